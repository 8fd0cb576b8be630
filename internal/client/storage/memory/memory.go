// Package memory provides a thread-safe in-memory implementation of storage.AuthStorage.
// Suitable for testing and for sessions that must not outlive the process.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/apexarenas/internal/client/storage"
)

// Storage is a thread-safe in-memory session slot.
type Storage struct {
	data   []byte
	mu     sync.RWMutex
	closed bool
}

var _ storage.AuthStorage = (*Storage)(nil)

// New creates a new empty in-memory Storage.
func New() *Storage {
	return &Storage{}
}

func (s *Storage) SaveAuth(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *Storage) GetAuth(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.data == nil {
		return nil, storage.ErrAuthNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Storage) DeleteAuth(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.data = nil
	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
