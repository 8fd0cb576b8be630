package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/apexarenas/internal/client/storage"
	"github.com/iudanet/apexarenas/internal/client/storage/memory"
	"github.com/iudanet/apexarenas/internal/models"
)

func strPtr(s string) *string { return &s }

func newTestStore(t *testing.T) (*SessionStore, *memory.Storage) {
	t.Helper()
	mem := memory.New()
	t.Cleanup(func() { _ = mem.Close() })
	return NewSessionStore(mem, zerolog.Nop()), mem
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	session := &models.StoredSession{
		Tokens: models.AuthTokens{AccessToken: "A1", RefreshToken: "R1"},
		User:   &models.AuthUser{ID: strPtr("u1"), Email: strPtr("a@b.co")},
	}
	require.NoError(t, store.Write(ctx, session))

	got := store.Read(ctx)
	require.NotNil(t, got)
	assert.Equal(t, session, got)
}

func TestSessionStore_WriteNilClearsSlot(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	require.NoError(t, store.Write(ctx, &models.StoredSession{
		Tokens: models.AuthTokens{AccessToken: "A1"},
	}))
	require.NoError(t, store.Write(ctx, nil))

	_, err := mem.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	assert.Nil(t, store.Read(ctx))

	// Повторная очистка пустого слота не ошибка
	assert.NoError(t, store.Write(ctx, nil))
}

func TestSessionStore_Read(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *models.StoredSession
	}{
		{
			name: "malformed json",
			raw:  `{"tokens":`,
			want: nil,
		},
		{
			name: "not an object",
			raw:  `["A1"]`,
			want: nil,
		},
		{
			name: "no tokens",
			raw:  `{"user":{"id":"u1"}}`,
			want: nil,
		},
		{
			name: "whitespace access token",
			raw:  `{"tokens":{"accessToken":"   "}}`,
			want: nil,
		},
		{
			name: "access token is not a string",
			raw:  `{"tokens":{"accessToken":42}}`,
			want: nil,
		},
		{
			name: "tokens trimmed",
			raw:  `{"tokens":{"accessToken":" A1 ","refreshToken":" R1\n"}}`,
			want: &models.StoredSession{
				Tokens: models.AuthTokens{AccessToken: "A1", RefreshToken: "R1"},
			},
		},
		{
			name: "user is an array",
			raw:  `{"tokens":{"accessToken":"A1"},"user":[1,2]}`,
			want: &models.StoredSession{
				Tokens: models.AuthTokens{AccessToken: "A1"},
			},
		},
		{
			name: "user is a string",
			raw:  `{"tokens":{"accessToken":"A1"},"user":"alice"}`,
			want: &models.StoredSession{
				Tokens: models.AuthTokens{AccessToken: "A1"},
			},
		},
		{
			name: "user fields",
			raw:  `{"tokens":{"accessToken":"A1"},"user":{"id":"u1","role":"organizer","verified":true}}`,
			want: &models.StoredSession{
				Tokens: models.AuthTokens{AccessToken: "A1"},
				User: &models.AuthUser{
					ID:       strPtr("u1"),
					Role:     strPtr("organizer"),
					Verified: func() *bool { b := true; return &b }(),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, mem := newTestStore(t)
			require.NoError(t, mem.SaveAuth(ctx, []byte(tt.raw)))

			assert.Equal(t, tt.want, store.Read(ctx))
		})
	}
}

func TestSessionStore_Read_Empty(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Nil(t, store.Read(context.Background()))
}

// failingStorage возвращает ошибку на любую операцию
type failingStorage struct {
	err error
}

func (f *failingStorage) SaveAuth(ctx context.Context, data []byte) error { return f.err }
func (f *failingStorage) GetAuth(ctx context.Context) ([]byte, error)     { return nil, f.err }
func (f *failingStorage) DeleteAuth(ctx context.Context) error            { return f.err }
func (f *failingStorage) Close() error                                    { return nil }

func TestSessionStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(&failingStorage{err: errors.New("disk full")}, zerolog.Nop())

	assert.Nil(t, store.Read(ctx))

	err := store.Write(ctx, &models.StoredSession{Tokens: models.AuthTokens{AccessToken: "A1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")

	err = store.Write(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete session")
}

func TestSessionStore_PersistedShape(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore(t)

	require.NoError(t, store.Write(ctx, &models.StoredSession{
		Tokens: models.AuthTokens{AccessToken: "A1"},
	}))

	raw, err := mem.GetAuth(ctx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"tokens": map[string]any{"accessToken": "A1"}}, decoded)
}
