package main

import (
	"github.com/kataras/iris/v12"
	"github.com/sirupsen/logrus"

	"exam-question-categorizer/configs"
	"exam-question-categorizer/controllers"
	"exam-question-categorizer/routes"
)

func main() {
	config := configs.InitConfig()
	log := configs.NewLogger(&config.App, nil)

	st, closeStore, err := configs.NewStore(&config.SQL)
	if err != nil {
		log.WithError(err).Fatal("storage starts error")
	}
	defer closeStore()

	if err = controllers.SeedAdmins(st, &config.App); err != nil {
		log.WithError(err).Fatal("seed admin accounts")
	}
	if config.App.AdminPassword == "" && len(config.App.Admins) > 0 {
		log.WithField("admins", config.App.Admins).Warn("admin_password not set, the first /register of an admin name gets the admin role")
	}

	enforcer, err := configs.NewEnforcer(&config.SQL)
	if err != nil {
		log.WithError(err).Fatal("casbin starts error")
	}

	app, err := routes.New(routes.Dependencies{
		Config:   config,
		Store:    st,
		Enforcer: enforcer,
		Log:      log,
	})
	if err != nil {
		log.WithError(err).Fatal("build application")
	}

	log.WithFields(logrus.Fields{
		"port":     config.App.Port,
		"driver":   config.SQL.Driver,
		"strategy": config.App.MatchStrategy,
	}).Info("starting ", config.App.AppName)
	err = app.Run(
		iris.Addr(":"+config.App.Port),
		iris.WithoutServerError(iris.ErrServerClosed),
		iris.WithOptimizations,
	)
	if err != nil {
		log.WithError(err).Error("server stopped")
	}
}
