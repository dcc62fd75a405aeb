package configs

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "configs")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_SampleConfig(t *testing.T) {
	conf, err := Load("config.json")
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.App.Port)
	assert.Equal(t, DriverMySQL, conf.SQL.Driver)
	assert.Equal(t, "exams", conf.SQL.DataBase)
	assert.Equal(t, 75.0, conf.Monitor.Threshold)
	assert.Equal(t, 5*time.Second, conf.Monitor.IntervalDuration())
	assert.Equal(t, time.Hour, conf.App.Expires())
	assert.True(t, conf.App.IsAdmin("admin"))
	assert.False(t, conf.App.IsAdmin("guest"))
	assert.Equal(t, "auto-scale-vm", conf.Monitor.ProvisionCommand[4])
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	conf, err := Load(writeConfig(t, `{"port": "9000"}`))
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.App.Port)
	assert.Equal(t, DriverMemory, conf.SQL.Driver)
	assert.Equal(t, "substring", conf.App.MatchStrategy)
	assert.Equal(t, time.Second, conf.Monitor.CPUSampleDuration())
	assert.Equal(t, time.Duration(0), conf.Monitor.CooldownDuration())
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("EXAM_PORT", "7000")
	os.Setenv("EXAM_MATCH_STRATEGY", "whole_word")
	os.Setenv("EXAM_ADMIN_PASSWORD", "s3cret")
	defer os.Unsetenv("EXAM_PORT")
	defer os.Unsetenv("EXAM_MATCH_STRATEGY")
	defer os.Unsetenv("EXAM_ADMIN_PASSWORD")

	conf, err := Load(writeConfig(t, `{"port": "9000"}`))
	require.NoError(t, err)
	assert.Equal(t, "7000", conf.App.Port)
	assert.Equal(t, "whole_word", conf.App.MatchStrategy)
	assert.Equal(t, "s3cret", conf.App.AdminPassword)
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	_, err := Load(writeConfig(t, `{
		"match_strategy": "fuzzy",
		"driver": "postgres",
		"monitor_threshold": 150,
		"monitor_interval": "0s"
	}`))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "unsupported match strategy: fuzzy")
	assert.Contains(t, msg, `unsupported driver "postgres"`)
	assert.Contains(t, msg, "monitor_threshold")
	assert.Contains(t, msg, "monitor_interval must be positive")
}

func TestLoad_MySQLNeedsConnectionDetails(t *testing.T) {
	_, err := Load(writeConfig(t, `{"driver": "mysql", "sql_host": ""}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql driver needs")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("missing", "config.json"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	conf := SqlConfig{SQLName: "u", SQLPasswd: "p", SQLHost: "db", SQLPort: "3307", DataBase: "exams"}
	dsn := conf.DSN()
	assert.Contains(t, dsn, "u:p@tcp(db:3307)/exams")
	assert.Contains(t, dsn, "charset=utf8")
}

func TestNewEnforcer_Memory(t *testing.T) {
	e, err := NewEnforcer(&SqlConfig{Driver: DriverMemory})
	require.NoError(t, err)
	ok, err := e.Enforce("anonymous", "/categorize/1", "GET")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewStore_Memory(t *testing.T) {
	st, closeFn, err := NewStore(&SqlConfig{Driver: DriverMemory})
	require.NoError(t, err)
	assert.NotNil(t, st)
	assert.NoError(t, closeFn())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&AppConfig{LogLevel: "warn", LogFormat: "json"}, &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	assert.Equal(t, logrus.InfoLevel, NewLogger(&AppConfig{LogLevel: "loud"}, &buf).GetLevel())
}
