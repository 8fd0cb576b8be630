package auth

//go:generate moq -out gateway_mock.go . Gateway

import (
	"context"

	"github.com/iudanet/apexarenas/internal/client/api"
	"github.com/iudanet/apexarenas/internal/models"
	pkgapi "github.com/iudanet/apexarenas/pkg/api"
)

// Gateway defines the backend calls the session manager depends on.
// *api.Client implements it; tests substitute fakes.
type Gateway interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (models.AuthResult, error)
	Logout(ctx context.Context, accessToken string) error
	VerifyOTP(ctx context.Context, req pkgapi.VerifyOTPRequest) (models.AuthResult, error)
	ResendOTP(ctx context.Context, email string) (models.AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) (models.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.AuthResult, error)
	ValidateToken(ctx context.Context, accessToken string) (models.AuthResult, error)
	GetProfile(ctx context.Context, accessToken string) (models.AuthResult, error)
	StartOAuth(ctx context.Context, next string) (string, error)
}

// Compile-time check that api.Client implements Gateway
var _ Gateway = (*api.Client)(nil)

// Session defines what UI consumers (CLI commands) use from the manager
type Session interface {
	// Init восстанавливает сессию из хранилища и проверяет ее на сервере.
	// Выполняется один раз; повторные вызовы ничего не делают.
	Init(ctx context.Context)

	// Snapshot возвращает текущее состояние сессии
	Snapshot() Snapshot

	// Login выполняет вход; сессия принимается только если есть access token
	Login(ctx context.Context, req pkgapi.LoginRequest) (models.AuthResult, error)

	// Register регистрирует пользователя, не меняя состояние сессии
	Register(ctx context.Context, req pkgapi.RegisterRequest) (models.AuthResult, error)

	// Logout уведомляет сервер (best effort) и всегда очищает локальную сессию
	Logout(ctx context.Context) error

	// RefreshAccessToken обновляет access token; при неудаче сессия очищается
	RefreshAccessToken(ctx context.Context) (string, error)

	// FetchProfile загружает профиль с одной попыткой обновления токена
	FetchProfile(ctx context.Context) (*models.AuthUser, error)

	VerifyOTP(ctx context.Context, req pkgapi.VerifyOTPRequest) (models.AuthResult, error)
	ResendOTP(ctx context.Context, email string) (models.AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) (models.AuthResult, error)

	// StartOAuth запрашивает у backend'а URL для входа через провайдера
	StartOAuth(ctx context.Context, next string) (string, error)
}

var _ Session = (*Manager)(nil)
