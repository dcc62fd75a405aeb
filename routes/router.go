// Package routes assembles the iris application serving the exam API.
package routes

import (
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/mvc"
	"github.com/kataras/iris/v12/sessions"
	"github.com/sirupsen/logrus"

	"exam-question-categorizer/authz"
	"exam-question-categorizer/classifier"
	"exam-question-categorizer/configs"
	"exam-question-categorizer/controllers"
	"exam-question-categorizer/store"
)

const sessionKey = "session"

type Dependencies struct {
	Config   *configs.Config
	Store    store.Store
	Enforcer authz.Enforcer
	Log      *logrus.Logger
}

func New(deps Dependencies) (*iris.Application, error) {
	strategy, err := classifier.NewStrategy(deps.Config.App.MatchStrategy)
	if err != nil {
		return nil, err
	}

	app := iris.New()
	app.Logger().SetLevel("warn")
	//region 启用session
	sessManager := sessions.New(sessions.Config{
		Cookie:                      deps.Config.App.SessionCookie,
		Expires:                     deps.Config.App.Expires(),
		DisableSubdomainPersistence: true,
		AllowReclaim:                true,
	})
	// one session per request, shared by the authz middleware and the controller
	session := func(ctx iris.Context) *sessions.Session {
		if sess, ok := ctx.Values().Get(sessionKey).(*sessions.Session); ok {
			return sess
		}
		sess := sessManager.Start(ctx)
		ctx.Values().Set(sessionKey, sess)
		return sess
	}
	//endregion

	app.Use(Cors)
	app.Use(RequestLogger(deps.Log))
	app.Use(authz.Middleware(deps.Enforcer, session, deps.Log))

	//region 注册路由
	data := mvc.New(app.Party("/"))
	data.Register(
		session,
		sessManager,
		deps.Store,
		classifier.New(strategy),
		&deps.Config.App,
		deps.Log,
	)
	data.Handle(new(controllers.Controller))
	//endregion

	app.Configure(iris.WithConfiguration(iris.Configuration{
		Charset: "UTF-8",
	}))
	return app, nil
}

func Cors(ctx iris.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Next()
}

func RequestLogger(log logrus.FieldLogger) iris.Handler {
	return func(ctx iris.Context) {
		start := time.Now()
		ctx.Next()
		log.WithFields(logrus.Fields{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.GetStatusCode(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
