package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/anstylian/petclinic/internal/data/pgxutil"
	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
)

// UserRepo provides read-only access to user credential records.
// The auth subsystem never writes user rows; seeding owns that.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// FindByUsername retrieves a user by exact, case-sensitive username match.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (domainauth.User, error) {
	var out domainauth.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, username, password
			FROM users
			WHERE username = $1
		`, username)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[domainauth.User])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainauth.User{}, ErrUserNotFound
		}
		return domainauth.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return out, nil
}
