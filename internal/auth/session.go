package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the identity a bearer token resolves to.
type Session struct {
	Token     string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// SessionStore maps opaque bearer tokens to logged-in identities.
// Get returns (nil, nil) for unknown or expired tokens.
type SessionStore interface {
	Create(ctx context.Context, userID, username string) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// MemoryStore is the default process-local session registry: a mutex-guarded
// map with per-entry expiry. Expired entries are dropped lazily on access,
// so no background sweeper is needed.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, sessions: make(map[string]Session)}
}

func (s *MemoryStore) Create(_ context.Context, userID, username string) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
