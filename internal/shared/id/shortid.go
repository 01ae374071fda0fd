package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 10
)

// Prefixes for entity identifiers. Seeded records follow the same scheme
// ("clm-001", "inv-001"), so generated ids sort into the same namespace.
const (
	PrefixClaim   = "clm"
	PrefixInvoice = "inv"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix-randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, id), nil
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
// Example: ParsePrefixedID("clm-XK9mP2vL3n") returns ("clm", "XK9mP2vL3n", nil)
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// HasPrefix reports whether the prefixed ID carries the expected prefix.
func HasPrefix(prefixedID, expectedPrefix string) bool {
	prefix, _, err := ParsePrefixedID(prefixedID)
	return err == nil && prefix == expectedPrefix
}

// NewClaimID generates a new claim identifier.
func NewClaimID() (string, error) {
	return GenerateWithPrefix(PrefixClaim, DefaultLength)
}

// NewInvoiceID generates a new invoice identifier.
func NewInvoiceID() (string, error) {
	return GenerateWithPrefix(PrefixInvoice, DefaultLength)
}
