package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, c jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	access := sign(t, claims{
		Username: "ann",
		Email:    "ann@example.com",
		Role:     "organizer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
	})

	info, err := Inspect(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", info.Subject)
	assert.Equal(t, "ann", info.Username)
	assert.Equal(t, "ann@example.com", info.Email)
	assert.Equal(t, "organizer", info.Role)
	assert.True(t, info.ExpiresAt.Equal(now.Add(15*time.Minute)))
	assert.True(t, info.IssuedAt.Equal(now))
	assert.False(t, info.Expired(now))
	assert.Equal(t, 15*time.Minute, info.TTL(now))
}

func TestInspect_ExpiredStillParsed(t *testing.T) {
	now := time.Now()
	access := sign(t, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})

	info, err := Inspect(access)
	require.NoError(t, err)
	assert.True(t, info.Expired(now))
	assert.Zero(t, info.TTL(now))
}

func TestInspect_NoExpiry(t *testing.T) {
	info, err := Inspect(sign(t, jwt.RegisteredClaims{Subject: "u1"}))
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_NotJWT(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "opaque", token: "b3BhcXVlLXRva2Vu"},
		{name: "three garbage parts", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inspect(tt.token)
			assert.ErrorIs(t, err, ErrNotJWT)
		})
	}
}
