package configs

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"exam-question-categorizer/authz"
)

// NewEnforcer builds the casbin enforcer and seeds the default policy.
// With the mysql driver policies are stored in casbin_rule through gorm.
func NewEnforcer(conf *SqlConfig) (*casbin.Enforcer, error) {
	if conf.Driver == DriverMemory {
		e, err := authz.NewEnforcer(conf.CasbinConf, nil)
		if err != nil {
			return nil, err
		}
		return e, authz.Seed(e)
	}
	db, err := gorm.Open(gormmysql.Open(conf.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := authz.NewEnforcer(conf.CasbinConf, adapter)
	if err != nil {
		return nil, err
	}
	return e, authz.Seed(e)
}
