// Package redis provides the Redis-backed session store adapter.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
	"github.com/anstylian/petclinic/internal/ports"
)

// SessionStore keeps sessions in Redis. The key is the opaque token, the
// value a JSON snapshot of the user, and the TTL slides: every successful
// fetch resets it to the configured timeout. The go-redis client pools
// connections internally, so concurrent requests never serialize on a single
// cache connection.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// SessionStoreOptions groups parameters for NewSessionStore.
type SessionStoreOptions struct {
	Client redis.UniversalClient
	// TTL is the session timeout applied on create and on every refresh.
	TTL    time.Duration
	Prefix string
	Logger *slog.Logger
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "session:"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		client: opts.Client,
		prefix: prefix,
		ttl:    opts.TTL,
		logger: logger,
	}
}

// Create issues a fresh token, serializes the user snapshot, and writes the
// session with the configured TTL. The token is never reused across login
// events; each call generates a new one.
func (s *SessionStore) Create(ctx context.Context, user domainauth.User) (string, error) {
	token, err := domainauth.NewSessionToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal session payload: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("write session: %w", err)
	}

	return token, nil
}

// GetAndRefresh resolves a token to its user snapshot and resets the entry's
// TTL to the configured timeout (sliding expiration). Read and refresh are
// independent operations; when the refresh fails but the read succeeded, the
// user is still returned and the failure logged. A lost refresh only
// shortens the session.
func (s *SessionStore) GetAndRefresh(ctx context.Context, token string) (domainauth.User, error) {
	if token == "" {
		return domainauth.User{}, ports.ErrSessionNotFound
	}

	key := s.prefix + token
	payload, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.User{}, ports.ErrSessionNotFound
		}
		return domainauth.User{}, fmt.Errorf("read session: %w", err)
	}

	var user domainauth.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return domainauth.User{}, fmt.Errorf("%w: %w", ports.ErrSessionCorrupt, err)
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "session TTL refresh failed",
			slog.String("user", user.Username),
			slog.Any("error", err),
		)
	}

	return user, nil
}

// Invalidate removes a session. A missing token is not an error.
func (s *SessionStore) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.prefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
