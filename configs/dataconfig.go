package configs

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"

	"exam-question-categorizer/classifier"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

//服务端配置
type AppConfig struct {
	AppName        string   `json:"app_name"`
	Port           string   `json:"port"`
	Mode           string   `json:"mode"`
	MatchStrategy  string   `json:"match_strategy"`
	SessionCookie  string   `json:"session_cookie"`
	SessionExpires string   `json:"session_expires"`
	Admins         []string `json:"admins"`
	AdminPassword  string   `json:"admin_password"`
	LogLevel       string   `json:"log_level"`
	LogFormat      string   `json:"log_format"`
}

//数据库配置
type SqlConfig struct {
	Driver       string `json:"driver"`
	SQLName      string `json:"sql_name"`
	SQLPasswd    string `json:"sql_passwd"`
	DataBase     string `json:"data_base"`
	SQLHost      string `json:"sql_host"`
	SQLPort      string `json:"sql_port"`
	CasbinConf   string `json:"casbin_conf"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
	ShowSQL      bool   `json:"show_sql"`
}

//资源监控配置
type MonitorConfig struct {
	Threshold        float64  `json:"monitor_threshold"`
	Interval         string   `json:"monitor_interval"`
	CPUSample        string   `json:"monitor_cpu_sample"`
	Cooldown         string   `json:"monitor_cooldown"`
	LogFile          string   `json:"monitor_log_file"`
	ProvisionCommand []string `json:"provision_command"`
}

// Config holds every section of the flat config.json.
type Config struct {
	App     AppConfig
	SQL     SqlConfig
	Monitor MonitorConfig
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			AppName:        "exam-question-categorizer",
			Port:           "8080",
			Mode:           "debug",
			MatchStrategy:  classifier.StrategySubstring,
			SessionCookie:  "sessioncookie",
			SessionExpires: "1h",
			LogLevel:       "info",
			LogFormat:      "text",
		},
		SQL: SqlConfig{
			Driver:       DriverMemory,
			SQLHost:      "127.0.0.1",
			SQLPort:      "3306",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Monitor: MonitorConfig{
			Threshold: 75,
			Interval:  "5s",
			CPUSample: "1s",
			Cooldown:  "0s",
			LogFile:   "resource_log.txt",
			ProvisionCommand: []string{
				"gcloud", "compute", "instances", "create", "auto-scale-vm",
				"--machine-type=e2-medium",
				"--image-family=debian-11",
				"--image-project=debian-cloud",
				"--zone=us-central1-a",
			},
		},
	}
}

// Load reads path over the defaults, applies EXAM_* environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	conf := Default()
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	for _, section := range []interface{}{&conf.App, &conf.SQL, &conf.Monitor} {
		if err := json.Unmarshal(content, section); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	conf.applyEnv()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

//初始化服务器配置
func InitConfig() *Config {
	str, _ := os.Getwd()
	conf, err := Load(filepath.Join(str, "configs", "config.json"))
	if err != nil {
		panic(err.Error())
	}
	return conf
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"EXAM_PORT":           &c.App.Port,
		"EXAM_MATCH_STRATEGY": &c.App.MatchStrategy,
		"EXAM_LOG_LEVEL":      &c.App.LogLevel,
		"EXAM_ADMIN_PASSWORD": &c.App.AdminPassword,
		"EXAM_DB_DRIVER":      &c.SQL.Driver,
		"EXAM_DB_HOST":        &c.SQL.SQLHost,
		"EXAM_DB_PORT":        &c.SQL.SQLPort,
		"EXAM_DB_USER":        &c.SQL.SQLName,
		"EXAM_DB_PASSWORD":    &c.SQL.SQLPasswd,
		"EXAM_DB_NAME":        &c.SQL.DataBase,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.App.Port == "" {
		result = multierror.Append(result, fmt.Errorf("port is required"))
	}
	if _, err := classifier.NewStrategy(c.App.MatchStrategy); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := time.ParseDuration(c.App.SessionExpires); err != nil {
		result = multierror.Append(result, fmt.Errorf("session_expires: %w", err))
	}
	switch c.SQL.Driver {
	case DriverMemory:
	case DriverMySQL:
		if c.SQL.SQLHost == "" || c.SQL.DataBase == "" || c.SQL.SQLName == "" {
			result = multierror.Append(result, fmt.Errorf("mysql driver needs sql_host, data_base and sql_name"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported driver %q", c.SQL.Driver))
	}
	if c.Monitor.Threshold <= 0 || c.Monitor.Threshold > 100 {
		result = multierror.Append(result, fmt.Errorf("monitor_threshold must be in (0, 100], got %v", c.Monitor.Threshold))
	}
	durations := map[string]string{
		"monitor_interval":   c.Monitor.Interval,
		"monitor_cpu_sample": c.Monitor.CPUSample,
		"monitor_cooldown":   c.Monitor.Cooldown,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if d < 0 || (d == 0 && name == "monitor_interval") {
			result = multierror.Append(result, fmt.Errorf("%s must be positive", name))
		}
	}
	return result.ErrorOrNil()
}

func (a AppConfig) Expires() time.Duration {
	d, _ := time.ParseDuration(a.SessionExpires)
	return d
}

func (a AppConfig) IsAdmin(username string) bool {
	for _, admin := range a.Admins {
		if admin == username {
			return true
		}
	}
	return false
}

func (m MonitorConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(m.Interval)
	return d
}

func (m MonitorConfig) CPUSampleDuration() time.Duration {
	d, _ := time.ParseDuration(m.CPUSample)
	return d
}

func (m MonitorConfig) CooldownDuration() time.Duration {
	d, _ := time.ParseDuration(m.Cooldown)
	return d
}
