package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated admin session. The token is opaque and
// carried by the client in a cookie; nothing else identifies the session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Store maps opaque tokens to live sessions. Implementations must be safe
// for concurrent use; expiry is evaluated lazily at lookup time.
type Store interface {
	Create(ttl time.Duration) (Session, error)
	Get(token string) (Session, bool)
	Delete(token string)
}

// MemoryStore keeps sessions in process memory. Each login creates an
// independent session, so two concurrent logins coexist until they expire
// or log out.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Create(ttl time.Duration) (Session, error) {
	s := Session{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	return s, nil
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	if s.Expired(time.Now()) {
		delete(m.sessions, token)
		return Session{}, false
	}
	return s, true
}

func (m *MemoryStore) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
