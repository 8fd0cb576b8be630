// Package token читает claims из access token для отображения.
//
// Подпись не проверяется: решения о валидности сессии принимает только сервер.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT означает, что токен непрозрачный (не JWT)
var ErrNotJWT = errors.New("token is not a JWT")

// Info содержит то, что можно показать пользователю о токене
type Info struct {
	ExpiresAt time.Time
	IssuedAt  time.Time
	Subject   string
	Username  string
	Email     string
	Role      string
}

// Expired сообщает, истек ли токен к моменту now.
// Токен без exp считается неистекающим.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// TTL возвращает оставшееся время жизни (0 если истек или exp нет)
func (i Info) TTL(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || i.Expired(now) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}

type claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect разбирает access token без проверки подписи
func Inspect(accessToken string) (Info, error) {
	accessToken = strings.TrimSpace(accessToken)
	if strings.Count(accessToken, ".") != 2 {
		return Info{}, ErrNotJWT
	}

	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, c); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	info := Info{
		Subject:  c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
	if c.ExpiresAt != nil {
		info.ExpiresAt = c.ExpiresAt.Time
	}
	if c.IssuedAt != nil {
		info.IssuedAt = c.IssuedAt.Time
	}
	return info, nil
}
