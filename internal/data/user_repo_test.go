package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstylian/petclinic/internal/testutil"
)

func TestUserRepo_Integration_FindByUsername(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		_, err := db.ExecContext(ctx,
			`INSERT INTO users (username, password) VALUES ($1, $2)`,
			"admin", "d033e22ae348aeb5660fc2140aec35850c4da997")
		require.NoError(t, err)

		t.Run("existing user", func(t *testing.T) {
			user, err := repo.FindByUsername(ctx, "admin")
			require.NoError(t, err)
			assert.Equal(t, "admin", user.Username)
			assert.Equal(t, "d033e22ae348aeb5660fc2140aec35850c4da997", user.PasswordDigest)
			assert.NotZero(t, user.ID)
		})

		t.Run("unknown user", func(t *testing.T) {
			_, err := repo.FindByUsername(ctx, "ghost")
			assert.ErrorIs(t, err, ErrUserNotFound)
		})

		t.Run("lookup is case sensitive", func(t *testing.T) {
			_, err := repo.FindByUsername(ctx, "Admin")
			assert.ErrorIs(t, err, ErrUserNotFound)
		})
	})
}
