package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anstylian/petclinic/internal/data"
	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
	"github.com/anstylian/petclinic/internal/ports"
)

// AuthService ties credential lookup, password verification and the
// session store together. Handlers call it; it never touches HTTP.
type AuthService struct {
	credentials ports.CredentialStore
	verifier    ports.PasswordVerifier
	sessions    ports.SessionStore
	logger      *slog.Logger
}

type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Verifier    ports.PasswordVerifier
	Sessions    ports.SessionStore
	Logger      *slog.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		credentials: opts.Credentials,
		verifier:    opts.Verifier,
		sessions:    opts.Sessions,
		logger:      logger.With("component", "auth"),
	}
}

// Authenticate checks a username/password pair. A nil user with a nil
// error means the credentials were rejected; a non-nil error means the
// backing store failed and the outcome is unknown.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domainauth.User, error) {
	user, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "login rejected", "username", username, "reason", "unknown user")
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	if !s.verifier.Verify(password, user.PasswordDigest) {
		s.logger.InfoContext(ctx, "login rejected", "username", username, "reason", "password mismatch")
		return nil, nil
	}

	s.logger.InfoContext(ctx, "login accepted", "username", username, "user_id", user.ID)
	return &user, nil
}

// CreateSession opens a new session for the user and returns its token.
func (s *AuthService) CreateSession(ctx context.Context, user domainauth.User) (string, error) {
	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// ResolveSession maps a token back to its user, refreshing the session
// lifetime. Unknown or expired tokens return (nil, nil).
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domainauth.User, error) {
	user, err := s.sessions.GetAndRefresh(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, nil
		}
		if errors.Is(err, ports.ErrSessionCorrupt) {
			s.logger.WarnContext(ctx, "discarding corrupt session", "err", err)
			return nil, nil
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return &user, nil
}

// Logout ends the session identified by token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Invalidate(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
