package storage

import (
	"context"
)

// DefaultSlot is the name of the slot that holds the current session.
const DefaultSlot = "apex_arenas_auth"

// AuthStorage defines interface for storing the session slot on the client.
// This is the lowest storage layer - it works with the raw serialized session
// and doesn't interpret or validate it.
type AuthStorage interface {
	// SaveAuth stores the serialized session as-is, replacing any previous value
	SaveAuth(ctx context.Context, data []byte) error

	// GetAuth retrieves the serialized session
	// Returns ErrAuthNotFound if the slot is empty
	GetAuth(ctx context.Context) ([]byte, error)

	// DeleteAuth empties the slot (logout). Deleting an empty slot is not an error.
	DeleteAuth(ctx context.Context) error

	// Close releases the underlying database
	Close() error
}
