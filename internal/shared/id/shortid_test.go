package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	id, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)

	// Non-positive lengths fall back to the default.
	id, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)
}

func TestGenerateAlphabet(t *testing.T) {
	id, err := Generate(64)
	require.NoError(t, err)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultLength)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewClaimID(t *testing.T) {
	id, err := NewClaimID()
	require.NoError(t, err)
	assert.True(t, HasPrefix(id, PrefixClaim))

	prefix, short, err := ParsePrefixedID(id)
	require.NoError(t, err)
	assert.Equal(t, "clm", prefix)
	assert.Len(t, short, DefaultLength)
}

func TestParsePrefixedIDInvalid(t *testing.T) {
	for _, input := range []string{"", "clm", "-abc", "clm-"} {
		_, _, err := ParsePrefixedID(input)
		assert.Error(t, err, "input %q", input)
	}

	// Seeded ids like "clm-001" parse fine.
	prefix, short, err := ParsePrefixedID("clm-001")
	require.NoError(t, err)
	assert.Equal(t, "clm", prefix)
	assert.Equal(t, "001", short)
}
