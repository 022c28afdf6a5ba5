package auth

import (
	"os"
	"strings"
	"sync"
)

// TokenStore holds the console's bearer token for outgoing backend calls,
// persisted to local storage so report exports keep working across
// restarts.
type TokenStore struct {
	path string

	mu    sync.RWMutex
	token string
}

func NewTokenStore(path string) *TokenStore {
	s := &TokenStore{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Get returns the current bearer token, or "" when none is stored.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the token and persists it.
func (s *TokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return os.WriteFile(s.path, []byte(token), 0600)
}
