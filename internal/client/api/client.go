package api

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout ограничивает время одного запроса к backend'у
const DefaultTimeout = 15 * time.Second

// Endpoints содержит пути API относительно baseURL.
// Пути являются конфигурацией и могут переопределяться.
type Endpoints struct {
	Register      string `yaml:"register"`
	Login         string `yaml:"login"`
	Logout        string `yaml:"logout"`
	VerifyOTP     string `yaml:"verify_otp"`
	ResendOTP     string `yaml:"resend_otp"`
	PasswordReset string `yaml:"password_reset"`
	Refresh       string `yaml:"refresh"`
	Validate      string `yaml:"validate"`
	Profile       string `yaml:"profile"`
	OAuthStart    string `yaml:"oauth_start"`
}

// DefaultEndpoints возвращает пути по умолчанию
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Register:      "/auth/register",
		Login:         "/auth/login",
		Logout:        "/auth/logout",
		VerifyOTP:     "/auth/verify-otp",
		ResendOTP:     "/auth/resend-otp",
		PasswordReset: "/auth/forgot-password",
		Refresh:       "/auth/refresh-token",
		Validate:      "/auth/validate-token",
		Profile:       "/auth/profile",
		OAuthStart:    "/auth/google",
	}
}

// merge заполняет пустые пути значениями по умолчанию
func (e Endpoints) merge(def Endpoints) Endpoints {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return Endpoints{
		Register:      pick(e.Register, def.Register),
		Login:         pick(e.Login, def.Login),
		Logout:        pick(e.Logout, def.Logout),
		VerifyOTP:     pick(e.VerifyOTP, def.VerifyOTP),
		ResendOTP:     pick(e.ResendOTP, def.ResendOTP),
		PasswordReset: pick(e.PasswordReset, def.PasswordReset),
		Refresh:       pick(e.Refresh, def.Refresh),
		Validate:      pick(e.Validate, def.Validate),
		Profile:       pick(e.Profile, def.Profile),
		OAuthStart:    pick(e.OAuthStart, def.OAuthStart),
	}
}

// Client представляет HTTP клиент для взаимодействия с auth API
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	baseURL    string
	endpoints  Endpoints
	timeout    time.Duration
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient подменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger задает логгер клиента
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEndpoints переопределяет пути API; пустые поля берутся по умолчанию
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		c.endpoints = e.merge(DefaultEndpoints())
	}
}

// NewClient создает новый API клиент.
// Клиент держит cookie jar, поэтому cookie backend'а (например, refresh cookie)
// отправляются с каждым запросом.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base URL scheme %q", parsed.Scheme)
	}

	c := &Client{
		baseURL:   baseURL,
		endpoints: DefaultEndpoints(),
		timeout:   DefaultTimeout,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.httpClient = &http.Client{
			Jar:       jar,
			Transport: newLoggingTransport(http.DefaultTransport, c.logger),
		}
	}

	return c, nil
}

// BaseURL возвращает адрес backend'а
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout возвращает таймаут одного запроса
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
