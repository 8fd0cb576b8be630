package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/apexarenas/internal/client/api"
	"github.com/iudanet/apexarenas/internal/models"
	pkgapi "github.com/iudanet/apexarenas/pkg/api"
)

const refreshKey = "refresh"

// Init восстанавливает сессию при старте.
// Сохраненная сессия принимается оптимистично и проверяется на сервере:
// 401/403 дают одну попытку refresh, любая другая ошибка очищает сессию.
func (m *Manager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		m.bootstrap(ctx)
	})
}

func (m *Manager) bootstrap(ctx context.Context) {
	defer m.finishInit()

	stored := m.store.Read(ctx)
	if stored == nil {
		m.mu.Lock()
		m.state = StateUnauthenticated
		m.mu.Unlock()
		return
	}

	m.adopt(stored)

	result, err := m.gateway.ValidateToken(ctx, stored.Tokens.AccessToken)
	if m.closed.Load() {
		return
	}

	if err == nil {
		if result.Tokens == nil && !result.User.IsSet() {
			return
		}

		merged := stored.Tokens
		if result.Tokens != nil {
			if result.Tokens.AccessToken != "" {
				merged.AccessToken = result.Tokens.AccessToken
			}
			if result.Tokens.RefreshToken != "" {
				merged.RefreshToken = result.Tokens.RefreshToken
			}
		}
		// Ошибка записи уже залогирована, сессия в памяти остается
		_ = m.SetSession(ctx, &merged, models.SomeUser(result.User.Or(stored.User)))
		return
	}

	if api.IsAuthError(err) {
		m.logger.Debug().Err(err).Msg("stored session rejected, trying refresh")
		if _, err := m.RefreshAccessToken(ctx); err != nil {
			m.logger.Info().Err(err).Msg("session could not be restored")
		}
		return
	}

	m.logger.Warn().Err(err).Msg("failed to validate stored session")
	_ = m.clearSession(ctx)
}

func (m *Manager) finishInit() {
	m.initDone.Store(true)
	if m.closed.Load() {
		return
	}
	m.notify(m.Snapshot())
}

// Login выполняет вход. Ответ без access token (например, требуется
// подтверждение email) возвращается как есть и сессию не меняет.
func (m *Manager) Login(ctx context.Context, req pkgapi.LoginRequest) (models.AuthResult, error) {
	result, err := m.gateway.Login(ctx, req)
	if err != nil {
		return result, err
	}

	if result.Tokens.HasAccessToken() {
		if err := m.SetSession(ctx, result.Tokens, result.User); err != nil {
			return result, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return result, nil
}

// Register не создает сессию: новый аккаунт сначала подтверждается по email
func (m *Manager) Register(ctx context.Context, req pkgapi.RegisterRequest) (models.AuthResult, error) {
	return m.gateway.Register(ctx, req)
}

// Logout уведомляет сервер и очищает сессию. Ошибка сервера только логируется,
// поэтому повторный вызов безопасен.
func (m *Manager) Logout(ctx context.Context) error {
	var accessToken string
	if tokens := m.currentTokens(); tokens != nil {
		accessToken = tokens.AccessToken
	}

	if err := m.gateway.Logout(ctx, accessToken); err != nil {
		m.logger.Warn().Err(err).Msg("server logout failed")
	}

	return m.clearSession(ctx)
}

// RefreshAccessToken обновляет access token и возвращает новый.
// Одновременные вызовы объединяются в один запрос к серверу.
// При любой неудаче сессия очищается и возвращается ошибка.
func (m *Manager) RefreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := m.refresh.Do(refreshKey, func() (any, error) {
		return m.refreshOnce(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (m *Manager) refreshOnce(ctx context.Context) (string, error) {
	tokens := m.currentTokens()
	if tokens == nil || (tokens.AccessToken == "" && tokens.RefreshToken == "") {
		return "", ErrNoSession
	}

	result, err := m.gateway.RefreshToken(ctx, tokens.RefreshToken)
	if m.closed.Load() {
		return "", ErrManagerClosed
	}
	if err != nil {
		m.logger.Info().Err(err).Msg("token refresh failed")
		_ = m.clearSession(ctx)
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	if !result.Tokens.HasAccessToken() {
		_ = m.clearSession(ctx)
		return "", ErrNoAccessToken
	}

	next := models.AuthTokens{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}
	if next.RefreshToken == "" {
		next.RefreshToken = tokens.RefreshToken
	}

	_ = m.SetSession(ctx, &next, models.SomeUser(result.User.Or(m.currentUser())))
	return next.AccessToken, nil
}

// FetchProfile загружает профиль текущего пользователя.
// При 401/403 токен обновляется один раз и запрос повторяется;
// если обновить не удалось, выполняется logout и возвращается ErrSessionExpired.
func (m *Manager) FetchProfile(ctx context.Context) (*models.AuthUser, error) {
	tokens := m.currentTokens()
	if !tokens.HasAccessToken() {
		return nil, ErrNoSession
	}

	user, err := m.loadProfile(ctx, tokens.AccessToken)
	if err == nil || !api.IsAuthError(err) {
		return user, err
	}

	accessToken, refreshErr := m.RefreshAccessToken(ctx)
	if refreshErr != nil {
		if errors.Is(refreshErr, ErrManagerClosed) {
			return nil, refreshErr
		}
		if err := m.Logout(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("failed to clear expired session")
		}
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, refreshErr)
	}

	return m.loadProfile(ctx, accessToken)
}

func (m *Manager) loadProfile(ctx context.Context, accessToken string) (*models.AuthUser, error) {
	result, err := m.gateway.GetProfile(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user := result.User.Or(m.currentUser())
	if user == nil {
		return nil, errors.New("profile response has no user")
	}

	// Токены берутся текущие: refresh мог заменить их во время запроса
	if tokens := m.currentTokens(); tokens.HasAccessToken() {
		_ = m.SetSession(ctx, tokens, models.SomeUser(user))
	}
	return user, nil
}

// VerifyOTP подтверждает email кодом из письма
func (m *Manager) VerifyOTP(ctx context.Context, req pkgapi.VerifyOTPRequest) (models.AuthResult, error) {
	return m.gateway.VerifyOTP(ctx, req)
}

// ResendOTP повторно отправляет код подтверждения
func (m *Manager) ResendOTP(ctx context.Context, email string) (models.AuthResult, error) {
	return m.gateway.ResendOTP(ctx, email)
}

// RequestPasswordReset запрашивает письмо для сброса пароля
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) (models.AuthResult, error) {
	return m.gateway.RequestPasswordReset(ctx, email)
}

func (m *Manager) StartOAuth(ctx context.Context, next string) (string, error) {
	return m.gateway.StartOAuth(ctx, next)
}
