package service

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// SHA1Verifier checks submitted passwords against stored SHA-1 hex digests.
// Accounts with an empty digest accept any password; they exist for demo
// fixtures and carry no credential.
type SHA1Verifier struct{}

func (SHA1Verifier) Verify(submitted, storedDigest string) bool {
	if storedDigest == "" {
		return true
	}
	sum := sha1.Sum([]byte(submitted))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}

// HashPassword returns the storage form of a password.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
