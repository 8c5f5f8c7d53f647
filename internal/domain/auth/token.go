package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// TokenLength is the fixed length of a session token.
const TokenLength = 32

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewSessionToken returns an opaque random alphanumeric token of TokenLength
// characters. The token doubles as the cache key and the cookie value, so it
// draws every character from crypto/rand; there is no counter or clock input
// that would make one token predictable from another.
func NewSessionToken() (string, error) {
	var b strings.Builder
	b.Grow(TokenLength)

	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	for range TokenLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}

	return b.String(), nil
}
