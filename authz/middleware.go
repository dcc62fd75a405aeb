package authz

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/sessions"
	"github.com/sirupsen/logrus"

	"exam-question-categorizer/models"
)

type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// RoleOf returns the role stored in the session, anonymous when logged out.
func RoleOf(session *sessions.Session) string {
	if role := session.GetString(models.Role); role != "" {
		return role
	}
	return models.RoleAnonymous
}

// Middleware rejects requests whose session role is not allowed on the path.
func Middleware(e Enforcer, start func(iris.Context) *sessions.Session, log logrus.FieldLogger) iris.Handler {
	return func(ctx iris.Context) {
		role := RoleOf(start(ctx))
		path, method := ctx.Path(), ctx.Method()
		ok, err := e.Enforce(role, path, method)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{"role": role, "path": path}).Error("authorization failed")
			reject(ctx, iris.StatusInternalServerError, models.Retry)
			return
		}
		if !ok {
			log.WithFields(logrus.Fields{"role": role, "path": path, "method": method}).Debug("permission denied")
			reject(ctx, iris.StatusForbidden, models.NoPermission)
			return
		}
		ctx.Next()
	}
}

func reject(ctx iris.Context, code int, result string) {
	ctx.StatusCode(code)
	ctx.JSON(models.Response{Status: models.Failure, Result: result})
	ctx.StopExecution()
}
