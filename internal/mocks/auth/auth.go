// Package auth provides hand-written test doubles for the auth ports.
package auth

import (
	"context"
	"sync"

	"github.com/anstylian/petclinic/internal/data"
	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
	"github.com/anstylian/petclinic/internal/ports"
)

// StubCredentialStore serves users from an in-memory map keyed by username.
type StubCredentialStore struct {
	Users map[string]domainauth.User
	// Err, when set, is returned from every lookup.
	Err error
}

func (s *StubCredentialStore) FindByUsername(ctx context.Context, username string) (domainauth.User, error) {
	if s.Err != nil {
		return domainauth.User{}, s.Err
	}
	user, ok := s.Users[username]
	if !ok {
		return domainauth.User{}, data.ErrUserNotFound
	}
	return user, nil
}

// MemorySessionStore is a map-backed session store. It does not expire
// entries; TTL behavior is covered by the Redis adapter tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.User

	// CreateErr, when set, fails every Create call.
	CreateErr error
	// GetErr, when set, fails every GetAndRefresh call.
	GetErr error
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.User)}
}

func (m *MemorySessionStore) Create(ctx context.Context, user domainauth.User) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	token, err := domainauth.NewSessionToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.sessions[token] = user
	m.mu.Unlock()
	return token, nil
}

func (m *MemorySessionStore) GetAndRefresh(ctx context.Context, token string) (domainauth.User, error) {
	if m.GetErr != nil {
		return domainauth.User{}, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.sessions[token]
	if !ok {
		return domainauth.User{}, ports.ErrSessionNotFound
	}
	return user, nil
}

func (m *MemorySessionStore) Invalidate(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Len reports the number of live sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

var (
	_ ports.CredentialStore = (*StubCredentialStore)(nil)
	_ ports.SessionStore    = (*MemorySessionStore)(nil)
)
