package configs

import (
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/core"

	"exam-question-categorizer/store"
)

// DSN formats the go-sql-driver connection string for conf.
func (conf SqlConfig) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = conf.SQLName
	dsn.Passwd = conf.SQLPasswd
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(conf.SQLHost, conf.SQLPort)
	dsn.DBName = conf.DataBase
	dsn.Params = map[string]string{"charset": "utf8"}
	return dsn.FormatDSN()
}

func NewMySQLEngine(conf *SqlConfig) (*xorm.Engine, error) {
	engine, err := xorm.NewEngine(DriverMySQL, conf.DSN())
	if err != nil {
		return nil, err
	}
	engine.SetTableMapper(core.SameMapper{})
	engine.SetColumnMapper(core.SameMapper{})
	if err = engine.Sync2(store.Tables()...); err != nil {
		engine.Close()
		return nil, err
	}
	engine.ShowSQL(conf.ShowSQL)
	engine.SetMaxOpenConns(conf.MaxOpenConns)
	engine.SetMaxIdleConns(conf.MaxIdleConns)
	return engine, nil
}

// NewStore opens the storage backend selected by conf.Driver.
func NewStore(conf *SqlConfig) (store.Store, func() error, error) {
	if conf.Driver == DriverMemory {
		return store.NewMemory(), func() error { return nil }, nil
	}
	engine, err := NewMySQLEngine(conf)
	if err != nil {
		return nil, nil, err
	}
	return store.NewXorm(engine), engine.Close, nil
}
