// Package session holds the authenticated identity of the client: the
// bearer token and the current user. The store is constructed once and
// injected into every component that needs identity; there is no hidden
// process-wide slot.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

var ErrNotLoggedIn = errors.New("no active session")

// Session is the single slot of persisted local state: created at login,
// attached to every outgoing request, destroyed at logout.
type Session struct {
	Token  string          `json:"token"`
	UserID int64           `json:"userId"`
	Role   entity.UserRole `json:"role,omitempty"`
}

func (s Session) LoggedIn() bool { return s.Token != "" }

type Store interface {
	// Save replaces the session slot, implicitly marking the client as
	// logged in.
	Save(ctx context.Context, s Session) error
	// Current returns the active session, or ErrNotLoggedIn when the slot
	// is empty.
	Current(ctx context.Context) (Session, error)
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// IsLoggedIn is a pure predicate on token presence.
func IsLoggedIn(ctx context.Context, store Store) bool {
	s, err := store.Current(ctx)
	return err == nil && s.LoggedIn()
}

// MemoryStore keeps the session slot in process memory. It is the default
// backing for interactive use.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	return nil
}

func (m *MemoryStore) Current(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.session.LoggedIn() {
		return Session{}, ErrNotLoggedIn
	}
	return m.session, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = Session{}
	return nil
}
