// Package ports defines interfaces for auth-related behavior. Implementations
// live in internal/adapters and internal/data; orchestration in
// internal/service.
package ports

import (
	"context"
	"errors"

	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
)

var (
	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionCorrupt is returned when a session payload cannot be decoded.
	ErrSessionCorrupt = errors.New("session payload corrupt")
)

// CredentialStore looks up user records by exact username match.
// Consumed read-only; the relational store owns the records.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (domainauth.User, error)
}

// PasswordVerifier compares a submitted password against a stored digest.
type PasswordVerifier interface {
	Verify(submitted, storedDigest string) bool
}

// SessionStore persists opaque session tokens mapped to user snapshots with a
// sliding time-to-live.
type SessionStore interface {
	// Create issues a fresh token for the user and writes the session with
	// the configured TTL.
	Create(ctx context.Context, user domainauth.User) (string, error)

	// GetAndRefresh resolves a token to its user snapshot and resets the
	// entry's TTL to the configured timeout.
	GetAndRefresh(ctx context.Context, token string) (domainauth.User, error)

	// Invalidate removes a session. A missing token is not an error.
	Invalidate(ctx context.Context, token string) error
}
