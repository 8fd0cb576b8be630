// Package config собирает настройки клиента: значения по умолчанию,
// YAML файл, переменные окружения и флаги (в порядке возрастания приоритета).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/apexarenas/internal/client/api"
	"github.com/iudanet/apexarenas/internal/client/oauth"
	"github.com/iudanet/apexarenas/internal/client/storage"
	"github.com/iudanet/apexarenas/internal/logging"
)

// ErrConfigFailed обозначает любую проблему с чтением или разбором файла конфигурации
var ErrConfigFailed = errors.New("config: failed to load")

// Драйверы хранилища сессии
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Переменные окружения
const (
	EnvAPIURL        = "APEX_API_URL"
	EnvAPITimeout    = "APEX_API_TIMEOUT"
	EnvStorageDriver = "APEX_STORAGE_DRIVER"
	EnvStoragePath   = "APEX_STORAGE_PATH"
	EnvLogLevel      = "APEX_LOG_LEVEL"
	EnvOAuthClientID = "APEX_OAUTH_CLIENT_ID"
)

const (
	DefaultBaseURL     = "http://localhost:8080/api"
	DefaultStoragePath = "apexarenas-client.db"
)

// Config описывает настройки клиента
type Config struct {
	OAuth   oauth.ProviderConfig `yaml:"oauth"`
	Storage StorageConfig        `yaml:"storage"`
	Log     LogConfig            `yaml:"log"`
	API     APIConfig            `yaml:"api"`
}

// APIConfig - адрес backend'а и пути endpoints
type APIConfig struct {
	Endpoints api.Endpoints `yaml:"endpoints"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// StorageConfig - где хранится слот сессии
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Slot   string `yaml:"slot"`
}

// LogConfig - уровень логирования
type LogConfig struct {
	Level string `yaml:"level"`
}

// Error содержит дополнительный контекст при неудачной загрузке конфигурации.
type Error struct {
	Err  error
	Path string
}

func (e *Error) Error() string {
	if e == nil {
		return ErrConfigFailed.Error()
	}
	return fmt.Sprintf("%v: %s: %v", ErrConfigFailed, e.Path, e.Err)
}

// Is позволяет проверять errors.Is(err, ErrConfigFailed)
func (e *Error) Is(target error) bool {
	return target == ErrConfigFailed
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   api.DefaultTimeout,
			Endpoints: api.DefaultEndpoints(),
		},
		Storage: StorageConfig{
			Driver: DriverBolt,
			Path:   DefaultStoragePath,
			Slot:   storage.DefaultSlot,
		},
		Log: LogConfig{
			Level: logging.DefaultLevel,
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем файл (если path
// не пустой), затем окружение. getenv обычно os.Getenv.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &Error{Path: path, Err: err}
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if v := getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv(EnvAPITimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAPITimeout, err)
		}
		c.API.Timeout = d
	}
	if v := getenv(EnvStorageDriver); v != "" {
		c.Storage.Driver = v
	}
	if v := getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvOAuthClientID); v != "" {
		c.OAuth.ClientID = v
	}
	return nil
}

// Validate проверяет итоговую конфигурацию
func (c *Config) Validate() error {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))

	switch {
	case c.API.BaseURL == "":
		return errors.New("api.base_url is required")
	case c.API.Timeout <= 0:
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	case c.Storage.Slot == "":
		return errors.New("storage.slot is required")
	}

	switch c.Storage.Driver {
	case DriverBolt, DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported storage.driver %q", c.Storage.Driver)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
