package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSearchPaths points the loader at dir for the duration of the test
func withSearchPaths(t *testing.T, dir string) {
	t.Helper()
	oldConfig, oldEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldConfig, oldEnv
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	withSearchPaths(t, t.TempDir())
	t.Setenv("TS_ENV", "staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "UTC", cfg.TimeSpan.DefaultTimezone)
	assert.Equal(t, 0, cfg.TimeSpan.MaxSpanYears)
}

func TestLoadConfig_FileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	withSearchPaths(t, dir)

	writeFile(t, filepath.Join(dir, "test.yaml"), `
server:
  port: 9090
  writeTimeout: 3
logger:
  level: warn
timespan:
  defaultTimezone: Europe/Berlin
  maxSpanYears: 500
`)
	writeFile(t, filepath.Join(dir, ".env"), "TS_LOGGER_FORMAT=console\n")

	t.Setenv("TS_ENV", "TEST")
	t.Setenv("TS_TIMESPAN_MAX_SPAN_YEARS", "42")
	t.Setenv("TS_LOGGER_FORMAT", "")
	require.NoError(t, os.Unsetenv("TS_LOGGER_FORMAT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout, "unset keys keep their defaults")
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format, "read from .env")
	assert.Equal(t, "Europe/Berlin", cfg.TimeSpan.DefaultTimezone)
	assert.Equal(t, 42, cfg.TimeSpan.MaxSpanYears, "environment wins over the file")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	withSearchPaths(t, dir)
	writeFile(t, filepath.Join(dir, "development.yaml"), "server: [port: 1\n")
	t.Setenv("TS_ENV", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TS_SOME_INT", "12")
	assert.Equal(t, 12, getEnvInt("TS_SOME_INT", 0))

	t.Setenv("TS_SOME_INT", "twelve")
	assert.Equal(t, 7, getEnvInt("TS_SOME_INT", 7))

	assert.Equal(t, -1, getEnvInt("TS_UNSET_INT", -1))
}
