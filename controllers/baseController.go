package controllers

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/mvc"
	"github.com/kataras/iris/v12/sessions"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"exam-question-categorizer/classifier"
	"exam-question-categorizer/configs"
	"exam-question-categorizer/models"
	"exam-question-categorizer/store"
)

type Controller struct {
	Context    iris.Context
	Session    *sessions.Session
	Sessions   *sessions.Sessions
	Store      store.Store
	Classifier *classifier.Classifier
	Config     *configs.AppConfig
	Log        *logrus.Logger
}

func (c Controller) BeforeActivation(b mvc.BeforeActivation) {
	b.Handle("GET", "/", "Index")
	b.Handle("GET", "/IsLogin", "IsLogin")
	b.Handle("POST", "/register", "Register")
	b.Handle("POST", "/login", "Login")
	b.Handle("POST", "/logout", "Logout")

	b.Handle("POST", "/year", "AddYear")
	b.Handle("POST", "/exam-type", "AddExamType")
	b.Handle("POST", "/subject", "AddSubject")
	b.Handle("POST", "/keyword", "AddKeyword")
	b.Handle("POST", "/question", "AddQuestion")
	b.Handle("GET", "/years", "YearList")
	b.Handle("GET", "/exam-types", "ExamTypeList")
	b.Handle("GET", "/subjects", "SubjectList")
	b.Handle("GET", "/keywords", "KeywordList")

	b.Handle("GET", "/categorize/{id:int64}", "Categorize")
}

func success(code int, result interface{}) mvc.Result {
	return mvc.Response{
		Code: code,
		Object: models.Response{
			Status: models.Success,
			Result: result,
		},
	}
}

func failure(code int, result string) mvc.Result {
	return mvc.Response{
		Code: code,
		Object: models.Response{
			Status: models.Failure,
			Result: result,
		},
	}
}

// retry logs err and answers with the generic storage failure.
func (c *Controller) retry(err error, msg string) mvc.Result {
	c.Log.WithError(err).WithField("path", c.Context.Path()).Error(msg)
	return failure(iris.StatusInternalServerError, models.Retry)
}

func (c Controller) Index() mvc.Result {
	return success(iris.StatusOK, models.Welcome)
}

func (c Controller) IsLogin() mvc.Result {
	login := models.Failure
	userID := c.Session.GetString(models.UserID)
	if userID != "" {
		login = models.Success
	}
	return mvc.Response{
		Object: models.Response{
			Status: login,
		},
	}
}

func (c *Controller) Register() mvc.Result {
	var info models.LoginInfo
	if err := c.Context.ReadJSON(&info); err != nil || info.Username == "" || info.Password == "" {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(info.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.retry(err, "hash password")
	}
	role := models.RoleMember
	if c.Config.IsAdmin(info.Username) {
		role = models.RoleAdmin
	}
	user := models.User{
		Username: info.Username,
		Password: string(hashed),
		Role:     role,
	}
	err = c.Store.AddUser(&user)
	if errors.Is(err, store.ErrDuplicate) {
		return failure(iris.StatusConflict, models.UserExists)
	}
	if err != nil {
		return c.retry(err, "create user")
	}
	c.Log.WithFields(logrus.Fields{"user": user.Username, "role": user.Role}).Info("user created")
	return success(iris.StatusCreated, user)
}

func (c *Controller) Login() mvc.Result {
	var info models.LoginInfo
	if err := c.Context.ReadJSON(&info); err != nil {
		return failure(iris.StatusBadRequest, models.Retry)
	}
	user, err := c.Store.UserByName(info.Username)
	if errors.Is(err, store.ErrNotFound) {
		return failure(iris.StatusUnauthorized, models.LoginFailed)
	}
	if err != nil {
		return c.retry(err, "lookup user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(info.Password)) != nil {
		return failure(iris.StatusUnauthorized, models.LoginFailed)
	}
	// 登录后更换session id
	c.Sessions.Destroy(c.Context)
	c.Context.Request().Header.Del("Cookie")
	session := c.Sessions.Start(c.Context)
	session.Set(models.UserID, user.Username)
	session.Set(models.Role, user.Role)
	return success(iris.StatusOK, user)
}

func (c *Controller) Logout() mvc.Result {
	c.Sessions.Destroy(c.Context)
	return success(iris.StatusOK, nil)
}

// SeedAdmins creates the accounts named in admins with admin_password so the
// names cannot be claimed through /register. Existing accounts are left alone.
func SeedAdmins(st store.Store, conf *configs.AppConfig) error {
	if conf.AdminPassword == "" {
		return nil
	}
	for _, username := range conf.Admins {
		hashed, err := bcrypt.GenerateFromPassword([]byte(conf.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = st.AddUser(&models.User{Username: username, Password: string(hashed), Role: models.RoleAdmin})
		if err != nil && !errors.Is(err, store.ErrDuplicate) {
			return err
		}
	}
	return nil
}
