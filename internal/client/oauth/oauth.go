// Package oauth начинает вход через внешнего провайдера.
//
// Завершение потока (обмен кода на токены) выполняет backend; здесь
// строится только URL, на который нужно отправить пользователя.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// ErrNoRedirect означает, что backend не вернул URL для перехода
var ErrNoRedirect = errors.New("no redirect url in response")

// Backend starts the flow on the server side (the default mode).
type Backend interface {
	StartOAuth(ctx context.Context, next string) (string, error)
}

// ProviderConfig описывает OAuth клиента для прямого режима.
// Если Issuer задан, endpoints берутся из OIDC discovery.
type ProviderConfig struct {
	ClientID    string   `yaml:"client_id"`
	Issuer      string   `yaml:"issuer"`
	AuthURL     string   `yaml:"auth_url"`
	TokenURL    string   `yaml:"token_url"`
	RedirectURL string   `yaml:"redirect_url"`
	Scopes      []string `yaml:"scopes"`
}

// Enabled сообщает, что настроен прямой режим
func (c ProviderConfig) Enabled() bool {
	return c.ClientID != ""
}

// Start - результат начала потока.
// State и Verifier нужны для завершения на стороне вызывающего.
type Start struct {
	URL      string
	State    string
	Verifier string
}

// Starter выбирает режим: прямой, если настроен провайдер, иначе через backend
type Starter struct {
	backend    Backend
	httpClient *http.Client
	logger     zerolog.Logger
	provider   ProviderConfig
}

// Option настраивает Starter
type Option func(*Starter)

// WithHTTPClient задает клиент для OIDC discovery
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Starter) {
		s.httpClient = hc
	}
}

// WithLogger задает логгер
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Starter) {
		s.logger = logger
	}
}

// NewStarter создает Starter
func NewStarter(backend Backend, provider ProviderConfig, opts ...Option) *Starter {
	s := &Starter{
		backend:  backend,
		provider: provider,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start возвращает URL, на который нужно перейти для входа.
// next - путь, куда вернуть пользователя после входа (только для backend режима).
func (s *Starter) Start(ctx context.Context, next string) (Start, error) {
	if s.provider.Enabled() {
		return s.startWithProvider(ctx)
	}
	return s.startWithBackend(ctx, next)
}

func (s *Starter) startWithBackend(ctx context.Context, next string) (Start, error) {
	if s.backend == nil {
		return Start{}, fmt.Errorf("oauth backend is not configured")
	}

	redirect, err := s.backend.StartOAuth(ctx, next)
	if err != nil {
		return Start{}, err
	}
	if redirect == "" {
		return Start{}, ErrNoRedirect
	}
	if err := checkURL(redirect); err != nil {
		return Start{}, err
	}

	s.logger.Debug().Msg("oauth flow started by backend")
	return Start{URL: redirect}, nil
}

func (s *Starter) startWithProvider(ctx context.Context) (Start, error) {
	endpoint, err := s.endpoint(ctx)
	if err != nil {
		return Start{}, err
	}

	scopes := s.provider.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	cfg := &oauth2.Config{
		ClientID:    s.provider.ClientID,
		Endpoint:    endpoint,
		RedirectURL: s.provider.RedirectURL,
		Scopes:      scopes,
	}

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	s.logger.Debug().Str("client_id", s.provider.ClientID).Msg("oauth flow started with provider")
	return Start{URL: authURL, State: state, Verifier: verifier}, nil
}

func (s *Starter) endpoint(ctx context.Context) (oauth2.Endpoint, error) {
	if s.provider.Issuer != "" {
		if s.httpClient != nil {
			ctx = oidc.ClientContext(ctx, s.httpClient)
		}
		provider, err := oidc.NewProvider(ctx, s.provider.Issuer)
		if err != nil {
			return oauth2.Endpoint{}, fmt.Errorf("failed to create OIDC provider: %w", err)
		}
		return provider.Endpoint(), nil
	}

	if s.provider.AuthURL == "" {
		return oauth2.Endpoint{}, fmt.Errorf("oauth provider needs issuer or auth_url")
	}
	if err := checkURL(s.provider.AuthURL); err != nil {
		return oauth2.Endpoint{}, err
	}
	return oauth2.Endpoint{
		AuthURL:  s.provider.AuthURL,
		TokenURL: s.provider.TokenURL,
	}, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid redirect url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid redirect url scheme %q", u.Scheme)
	}
	return nil
}
