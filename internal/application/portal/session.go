package portal

import (
	"net/http"
	"sync"
)

// tokenKey is the storage key the session token lives under.
const tokenKey = "authToken"

// TokenStore is the key/value provider backing a Session. The default is
// memory-only; alternate persistence can be substituted without changing
// call sites.
type TokenStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryTokenStore is a process-scoped TokenStore. Nothing survives beyond
// the session's natural lifetime.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{values: make(map[string]string)}
}

func (s *MemoryTokenStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryTokenStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryTokenStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Session holds the single bearer token of the active session. Created empty,
// populated on login, cleared on logout.
type Session struct {
	store TokenStore
}

// NewSession creates a session over the given store. A nil store gets a
// fresh memory-only one.
func NewSession(store TokenStore) *Session {
	if store == nil {
		store = NewMemoryTokenStore()
	}
	return &Session{store: store}
}

// SetToken stores the token, overwriting any previous value.
func (s *Session) SetToken(token string) {
	s.store.Set(tokenKey, token)
}

// Token returns the stored token, if any.
func (s *Session) Token() (string, bool) {
	return s.store.Get(tokenKey)
}

// Clear removes the token. Subsequent requests go out unauthenticated.
func (s *Session) Clear() {
	s.store.Delete(tokenKey)
}

// AuthHeader returns the Authorization header derived from the stored token,
// or an empty header set when there is none. Never fails.
func (s *Session) AuthHeader() http.Header {
	header := http.Header{}
	if token, ok := s.Token(); ok && token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return header
}
