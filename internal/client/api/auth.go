package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/apexarenas/internal/client/normalize"
	"github.com/iudanet/apexarenas/internal/models"
	"github.com/iudanet/apexarenas/pkg/api"
)

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (models.AuthResult, error) {
	return c.call(ctx, "register", http.MethodPost, c.endpoints.Register, RequestOptions{Body: req})
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (models.AuthResult, error) {
	return c.call(ctx, "login", http.MethodPost, c.endpoints.Login, RequestOptions{Body: req})
}

// Logout уведомляет сервер о выходе
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	_, err := c.call(ctx, "logout", http.MethodPost, c.endpoints.Logout, RequestOptions{Token: accessToken})
	return err
}

// VerifyOTP подтверждает email одноразовым кодом
func (c *Client) VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (models.AuthResult, error) {
	return c.call(ctx, "verify otp", http.MethodPost, c.endpoints.VerifyOTP, RequestOptions{Body: req})
}

// ResendOTP запрашивает повторную отправку кода
func (c *Client) ResendOTP(ctx context.Context, email string) (models.AuthResult, error) {
	body := api.EmailRequest{Email: email}
	return c.call(ctx, "resend otp", http.MethodPost, c.endpoints.ResendOTP, RequestOptions{Body: body})
}

// RequestPasswordReset запрашивает письмо для сброса пароля
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (models.AuthResult, error) {
	body := api.EmailRequest{Email: email}
	return c.call(ctx, "password reset", http.MethodPost, c.endpoints.PasswordReset, RequestOptions{Body: body})
}

// RefreshToken обменивает refresh token на новый access token.
// Пустой refreshToken не отправляется: сервер решает сам, например по cookie.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (models.AuthResult, error) {
	body := api.RefreshRequest{RefreshToken: refreshToken}
	return c.call(ctx, "refresh token", http.MethodPost, c.endpoints.Refresh, RequestOptions{Body: body})
}

// ValidateToken проверяет access token на сервере
func (c *Client) ValidateToken(ctx context.Context, accessToken string) (models.AuthResult, error) {
	return c.call(ctx, "validate token", http.MethodPost, c.endpoints.Validate, RequestOptions{Token: accessToken})
}

// GetProfile получает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context, accessToken string) (models.AuthResult, error) {
	return c.call(ctx, "get profile", http.MethodGet, c.endpoints.Profile, RequestOptions{Token: accessToken})
}

// StartOAuth просит backend начать OAuth и возвращает адрес перенаправления
func (c *Client) StartOAuth(ctx context.Context, next string) (string, error) {
	payload, err := c.Request(ctx, http.MethodPost, c.endpoints.OAuthStart, RequestOptions{
		Body: api.OAuthStartRequest{Next: next},
	})
	if err != nil {
		return "", fmt.Errorf("oauth start request failed: %w", err)
	}

	redirect := normalize.RedirectURL(payload)
	if redirect == "" {
		return "", fmt.Errorf("oauth start response has no redirect URL")
	}
	return redirect, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, opts RequestOptions) (models.AuthResult, error) {
	payload, err := c.Request(ctx, method, path, opts)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%s request failed: %w", op, err)
	}
	return normalize.Normalize(payload), nil
}
