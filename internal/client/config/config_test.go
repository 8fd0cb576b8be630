package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/auth/login", cfg.API.Endpoints.Login)
	assert.Equal(t, DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "apex_arenas_auth", cfg.Storage.Slot)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.OAuth.Enabled())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
api:
  base_url: https://api.apexarenas.example/api
  timeout: 5s
  endpoints:
    login: /v2/auth/login
storage:
  driver: sqlite
  path: /tmp/apex.db
log:
  level: debug
oauth:
  client_id: apex-cli
  issuer: https://accounts.example.com
  scopes: [openid, email]
`)

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://api.apexarenas.example/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/v2/auth/login", cfg.API.Endpoints.Login)
	// Не указанные в файле значения остаются по умолчанию
	assert.Equal(t, "/auth/logout", cfg.API.Endpoints.Logout)
	assert.Equal(t, "apex_arenas_auth", cfg.Storage.Slot)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "apex-cli", cfg.OAuth.ClientID)
	assert.Equal(t, []string{"openid", "email"}, cfg.OAuth.Scopes)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "api:\n  base_url: https://file.example/api\n")

	cfg, err := Load(path, envMap(map[string]string{
		EnvAPIURL:        "https://env.example/api",
		EnvAPITimeout:    "30s",
		EnvStorageDriver: "memory",
		EnvStoragePath:   "/var/lib/apex.db",
		EnvLogLevel:      "warn",
		EnvOAuthClientID: "env-client",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://env.example/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/apex.db", cfg.Storage.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "env-client", cfg.OAuth.ClientID)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "api: [unclosed"), nil)
		assert.ErrorIs(t, err, ErrConfigFailed)
	})

	t.Run("bad timeout env", func(t *testing.T) {
		_, err := Load("", envMap(map[string]string{EnvAPITimeout: "soon"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvAPITimeout)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "  " }, errMsg: "base_url"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, errMsg: "timeout"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, errMsg: "unsupported storage.driver"},
		{name: "bolt without path", mutate: func(c *Config) { c.Storage.Path = "" }, errMsg: "storage.path"},
		{name: "empty slot", mutate: func(c *Config) { c.Storage.Slot = "" }, errMsg: "storage.slot"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "chatty" }, errMsg: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("memory without path", func(t *testing.T) {
		cfg := Default()
		cfg.Storage.Driver = " MEMORY "
		cfg.Storage.Path = ""
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	})
}
