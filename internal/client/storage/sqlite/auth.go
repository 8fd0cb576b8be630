package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/apexarenas/internal/client/storage"
)

// SaveAuth stores the serialized session in the slot
func (s *Storage) SaveAuth(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO session_slots (name, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, s.slot, data, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	return nil
}

// GetAuth retrieves the serialized session
func (s *Storage) GetAuth(ctx context.Context) ([]byte, error) {
	query := `SELECT value FROM session_slots WHERE name = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, s.slot).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAuthNotFound
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	return data, nil
}

// DeleteAuth removes the session (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	query := `DELETE FROM session_slots WHERE name = ?`

	if _, err := s.db.ExecContext(ctx, query, s.slot); err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	return nil
}
