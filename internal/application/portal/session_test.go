package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenLifecycle(t *testing.T) {
	s := NewSession(nil)

	_, ok := s.Token()
	assert.False(t, ok)

	s.SetToken("tok-1")
	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	// Overwrites the previous value.
	s.SetToken("tok-2")
	token, _ = s.Token()
	assert.Equal(t, "tok-2", token)

	s.Clear()
	_, ok = s.Token()
	assert.False(t, ok)
}

func TestAuthHeader(t *testing.T) {
	s := NewSession(nil)

	header := s.AuthHeader()
	assert.Empty(t, header.Get("Authorization"))

	s.SetToken("abc123")
	header = s.AuthHeader()
	assert.Equal(t, "Bearer abc123", header.Get("Authorization"))

	s.Clear()
	header = s.AuthHeader()
	assert.Empty(t, header.Get("Authorization"))
	assert.Len(t, header, 0)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := NewSession(nil)
	b := NewSession(nil)

	a.SetToken("only-a")
	_, ok := b.Token()
	assert.False(t, ok)
}

func TestInjectedTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	s := NewSession(store)

	s.SetToken("shared")
	v, ok := store.Get("authToken")
	assert.True(t, ok)
	assert.Equal(t, "shared", v)
}
