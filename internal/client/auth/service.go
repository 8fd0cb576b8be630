package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/apexarenas/internal/models"
)

var (
	// ErrNoSession indicates that there is no access or refresh token to work with
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired indicates that the session could not be renewed
	ErrSessionExpired = errors.New("session expired, please sign in again")

	// ErrNoAccessToken indicates a successful refresh response without a usable token
	ErrNoAccessToken = errors.New("refresh response has no access token")

	// ErrManagerClosed indicates that the manager was closed while a call was in flight
	ErrManagerClosed = errors.New("session manager closed")
)

// State описывает состояние сессии
type State int

const (
	StateUninitialized State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the session state handed to UI consumers.
type Snapshot struct {
	Tokens         *models.AuthTokens
	User           *models.AuthUser
	State          State
	IsInitializing bool
}

// IsAuthenticated сообщает, есть ли у сессии access token
func (s Snapshot) IsAuthenticated() bool {
	return s.Tokens.HasAccessToken()
}

// Manager owns the in-memory session for its lifetime and is the only
// writer of the persisted slot. Construct one per application root.
type Manager struct {
	gateway     Gateway
	store       *SessionStore
	tokens      *models.AuthTokens
	user        *models.AuthUser
	subscribers map[int]func(Snapshot)
	logger      zerolog.Logger
	refresh     singleflight.Group
	initOnce    sync.Once
	nextSubID   int
	state       State
	mu          sync.RWMutex
	closed      atomic.Bool
	initDone    atomic.Bool
}

// ManagerOption настраивает Manager
type ManagerOption func(*Manager)

// WithManagerLogger задает логгер менеджера
func WithManagerLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager создает менеджер сессии. Состояние - Uninitialized до вызова Init.
func NewManager(gateway Gateway, store *SessionStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		gateway:     gateway,
		store:       store,
		subscribers: make(map[int]func(Snapshot)),
		logger:      zerolog.Nop(),
		state:       StateUninitialized,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot возвращает копию текущего состояния
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:          m.state,
		IsInitializing: !m.initDone.Load(),
	}
	if m.tokens != nil {
		t := *m.tokens
		snap.Tokens = &t
	}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Subscribe регистрирует обработчик изменений сессии.
// Возвращает функцию отписки.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

func (m *Manager) notify(snap Snapshot) {
	if m.closed.Load() {
		return
	}

	m.mu.RLock()
	subs := make([]func(Snapshot), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Close отключает менеджер: результаты незавершенного Init больше не
// применяются, подписчики не уведомляются.
func (m *Manager) Close() {
	m.closed.Store(true)

	m.mu.Lock()
	m.subscribers = make(map[int]func(Snapshot))
	m.mu.Unlock()
}

// SetSession is the single gate for session mutation.
// Tokens without an access token clear the session in memory and storage.
// The stored user is user.Or(nil): an absent user means "no user known".
func (m *Manager) SetSession(ctx context.Context, tokens *models.AuthTokens, user models.UserValue) error {
	m.mu.Lock()

	var (
		persisted *models.StoredSession
	)
	if !tokens.HasAccessToken() {
		m.tokens = nil
		m.user = nil
		m.state = StateUnauthenticated
	} else {
		t := *tokens
		m.tokens = &t
		m.user = user.Or(nil)
		m.state = StateAuthenticated
		persisted = &models.StoredSession{Tokens: t, User: m.user}
	}

	// Запись под той же блокировкой: память и слот меняются в одном порядке
	err := m.store.Write(ctx, persisted)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to persist session")
	}
	m.notify(snap)
	return err
}

// clearSession очищает сессию в памяти и в хранилище
func (m *Manager) clearSession(ctx context.Context) error {
	return m.SetSession(ctx, nil, models.ClearedUser())
}

// adopt принимает сессию только в память (оптимистично, без записи)
func (m *Manager) adopt(session *models.StoredSession) {
	m.mu.Lock()
	t := session.Tokens
	m.tokens = &t
	m.user = session.User
	m.state = StateAuthenticated
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

func (m *Manager) currentTokens() *models.AuthTokens {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.tokens == nil {
		return nil
	}
	t := *m.tokens
	return &t
}

func (m *Manager) currentUser() *models.AuthUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}
