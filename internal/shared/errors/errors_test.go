package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageFormat(t *testing.T) {
	err := NewNetworkError("no se pudo conectar", "dial tcp: connection refused")
	assert.Equal(t, "network: no se pudo conectar (dial tcp: connection refused)", err.Error())

	err = NewTimeoutError("el servidor tardó demasiado en responder")
	assert.Equal(t, "timeout: el servidor tardó demasiado en responder", err.Error())
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"invalid credentials", NewInvalidCredentialsError("incorrectos"), IsInvalidCredentialsError},
		{"timeout", NewTimeoutError("timeout"), IsTimeoutError},
		{"network", NewNetworkError("network"), IsNetworkError},
		{"http status", NewHTTPStatusError(404, "not found"), IsHTTPStatusError},
		{"not found", NewNotFoundError("missing"), IsNotFoundError},
		{"validation", NewValidationError("bad input"), IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(fmt.Errorf("plain error")))
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewInvalidCredentialsError("incorrectos"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsInvalidCredentialsError(wrapped))
	assert.False(t, IsTimeoutError(wrapped))

	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInvalidCredentials, appErr.Type)
}

func TestHTTPStatusCode(t *testing.T) {
	assert.Equal(t, 404, HTTPStatusCode(NewHTTPStatusError(404, "not found")))
	assert.Equal(t, 500, HTTPStatusCode(fmt.Errorf("wrapped: %w", NewHTTPStatusError(500, "boom"))))

	// Other kinds carry an HTTP code internally but do not expose it here.
	assert.Equal(t, 0, HTTPStatusCode(NewTimeoutError("slow")))
	assert.Equal(t, 0, HTTPStatusCode(nil))
}
