package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iudanet/apexarenas/internal/client/normalize"
	"github.com/iudanet/apexarenas/internal/client/storage"
	"github.com/iudanet/apexarenas/internal/models"
)

// SessionStore reads and writes the single persisted session slot.
// Validation here is purely structural: token format and expiry are not checked.
type SessionStore struct {
	storage storage.AuthStorage
	logger  zerolog.Logger
}

// NewSessionStore создает слой чтения/записи сессии поверх сырого хранилища
func NewSessionStore(storage storage.AuthStorage, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		storage: storage,
		logger:  logger,
	}
}

// Read возвращает сохраненную сессию или nil, если слот пуст, поврежден,
// не является объектом или не содержит непустого tokens.accessToken.
func (s *SessionStore) Read(ctx context.Context) *models.StoredSession {
	raw, err := s.storage.GetAuth(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.Warn().Err(err).Msg("failed to read session slot")
		}
		return nil
	}

	session, err := decodeSession(raw)
	if err != nil {
		s.logger.Debug().Err(err).Msg("ignoring malformed session slot")
		return nil
	}
	return session
}

// Write сохраняет сессию; nil очищает слот
func (s *SessionStore) Write(ctx context.Context, session *models.StoredSession) error {
	if session == nil {
		if err := s.storage.DeleteAuth(ctx); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func decodeSession(raw []byte) (*models.StoredSession, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	record, ok := parsed.(map[string]any)
	if !ok || record == nil {
		return nil, fmt.Errorf("session is not an object")
	}

	tokensRecord, _ := record["tokens"].(map[string]any)
	accessToken := trimmedString(tokensRecord, "accessToken")
	if accessToken == "" {
		return nil, fmt.Errorf("session has no access token")
	}

	session := &models.StoredSession{
		Tokens: models.AuthTokens{
			AccessToken:  accessToken,
			RefreshToken: trimmedString(tokensRecord, "refreshToken"),
		},
	}

	// Пользователь берется только если это объект (не массив и не скаляр)
	if user, ok := normalize.UserFromObject(record["user"]); ok {
		session.User = user
	}

	return session, nil
}

func trimmedString(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}
