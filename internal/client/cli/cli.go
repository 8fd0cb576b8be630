// Package cli реализует команды apexctl поверх менеджера сессии.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iudanet/apexarenas/internal/client/api"
	"github.com/iudanet/apexarenas/internal/client/auth"
	"github.com/iudanet/apexarenas/internal/client/config"
	"github.com/iudanet/apexarenas/internal/client/iocli"
	"github.com/iudanet/apexarenas/internal/client/storage"
	"github.com/iudanet/apexarenas/internal/client/storage/boltdb"
	"github.com/iudanet/apexarenas/internal/client/storage/memory"
	"github.com/iudanet/apexarenas/internal/client/storage/sqlite"
	"github.com/iudanet/apexarenas/internal/logging"
)

// EnvPassword позволяет передать пароль без интерактивного ввода
const EnvPassword = "APEX_PASSWORD"

// BuildInfo - версия сборки, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Passwords описывает источники пароля
type Passwords struct {
	FromFile string
	FromArgs string
}

// flags - глобальные флаги, перекрывающие конфигурацию
type flags struct {
	configPath    string
	baseURL       string
	storageDriver string
	storagePath   string
	logLevel      string
	timeout       time.Duration
}

// Cli держит зависимости одного запуска команды
type Cli struct {
	io      iocli.IO
	errOut  io.Writer
	getenv  func(string) string
	build   BuildInfo
	flags   flags
	cfg     *config.Config
	logger  zerolog.Logger
	storage storage.AuthStorage
	client  *api.Client
	manager *auth.Manager
}

// New создает Cli. getenv обычно os.Getenv.
func New(stdio iocli.IO, errOut io.Writer, getenv func(string) string, build BuildInfo) *Cli {
	return &Cli{
		io:     stdio,
		errOut: errOut,
		getenv: getenv,
		build:  build,
		logger: zerolog.Nop(),
	}
}

// NewRootCommand собирает дерево команд apexctl
func (c *Cli) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "apexctl",
		Short: "Apex Arenas account client",
		Long: `Command line client for Apex Arenas accounts.
Signs in, keeps the session on disk and refreshes it when the access token expires.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.io)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "path to YAML config file")
	pf.StringVar(&c.flags.baseURL, "server", "", "API base URL (overrides config)")
	pf.StringVar(&c.flags.storageDriver, "storage", "", "session storage driver: bolt, sqlite or memory")
	pf.StringVar(&c.flags.storagePath, "db", "", "path to local session database")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.DurationVar(&c.flags.timeout, "timeout", 0, "request timeout")

	root.AddCommand(
		c.newRegisterCommand(),
		c.newLoginCommand(),
		c.newLogoutCommand(),
		c.newStatusCommand(),
		c.newRefreshCommand(),
		c.newProfileCommand(),
		c.newVerifyOTPCommand(),
		c.newResendOTPCommand(),
		c.newForgotPasswordCommand(),
		c.newOAuthStartCommand(),
		c.newVersionCommand(),
	)
	return root
}

// loadConfig применяет флаги поверх файла и окружения
func (c *Cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.flags.configPath, c.getenv)
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("server") {
		cfg.API.BaseURL = c.flags.baseURL
	}
	if pf.Changed("storage") {
		cfg.Storage.Driver = c.flags.storageDriver
	}
	if pf.Changed("db") {
		cfg.Storage.Path = c.flags.storagePath
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = c.flags.logLevel
	}
	if pf.Changed("timeout") {
		cfg.API.Timeout = c.flags.timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// open готовит конфигурацию, хранилище, API клиент и менеджер сессии
func (c *Cli) open(cmd *cobra.Command) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, c.errOut)
	if err != nil {
		return err
	}
	c.logger = logger

	st, err := OpenStorage(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}
	c.storage = st

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithEndpoints(cfg.API.Endpoints),
		api.WithLogger(logger.With().Str("component", "api").Logger()),
	)
	if err != nil {
		_ = st.Close()
		return err
	}
	c.client = client

	store := auth.NewSessionStore(st, logger.With().Str("component", "session_store").Logger())
	c.manager = auth.NewManager(client, store,
		auth.WithManagerLogger(logger.With().Str("component", "session").Logger()))
	return nil
}

func (c *Cli) close() {
	if c.manager != nil {
		c.manager.Close()
	}
	if c.storage != nil {
		if err := c.storage.Close(); err != nil {
			c.logger.Error().Err(err).Msg("failed to close storage")
		}
	}
}

// withSession открывает зависимости, при необходимости восстанавливает
// сессию и закрывает все после выполнения fn
func (c *Cli) withSession(restore bool, fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := c.open(cmd); err != nil {
			return err
		}
		defer c.close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if restore {
			c.manager.Init(ctx)
		}
		return fn(ctx)
	}
}

// OpenStorage открывает хранилище слота сессии по настройкам
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (storage.AuthStorage, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		st, err := boltdb.New(ctx, cfg.Path, cfg.Slot)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.New(ctx, cfg.Path, cfg.Slot)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return st, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// getPassword retrieves the password from various sources with priority:
// 1. Environment variable APEX_PASSWORD
// 2. File specified in FromFile
// 3. Command-line parameter FromArgs
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, error) {
	if envPassword := c.getenv(EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// inputOrPrompt возвращает значение флага или спрашивает его
func (c *Cli) inputOrPrompt(value, prompt string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}

// describeError превращает ошибку запроса в сообщение для пользователя
func describeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrSessionExpired) {
		return errors.New("your session has expired, please run 'apexctl login'")
	}
	if reqErr, ok := api.AsRequestError(err); ok {
		return errors.New(reqErr.Message)
	}
	return err
}
