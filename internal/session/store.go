package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store maps opaque session tokens to usernames for the lifetime of the
// process. Entries are only ever added; there is no expiry, matching the
// login-once contract of the service.
type Store struct {
	mu      sync.RWMutex
	byToken map[string]string
}

// NewStore returns an empty in-memory session store.
func NewStore() *Store {
	return &Store{byToken: make(map[string]string)}
}

// Create registers a new session for username and returns its opaque token.
func (s *Store) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.byToken[token] = username
	s.mu.Unlock()
	return token
}

// Validate resolves a token to the username it was issued for.
func (s *Store) Validate(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.byToken[token]
	return username, ok
}
