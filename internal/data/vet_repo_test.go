package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstylian/petclinic/internal/domain/model"
	"github.com/anstylian/petclinic/internal/testutil"
)

func TestVetRepo_Integration_CRUD(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewVetRepo(db)

		created, err := repo.Create(ctx, &model.Vet{Name: "Dr. Sam Okafor"})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		t.Run("duplicate name maps to ErrVetNameExists", func(t *testing.T) {
			_, err := repo.Create(ctx, &model.Vet{Name: "Dr. Sam Okafor"})
			assert.ErrorIs(t, err, ErrVetNameExists)
		})

		t.Run("get and list", func(t *testing.T) {
			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Dr. Sam Okafor", got.Name)

			all, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})

		t.Run("update", func(t *testing.T) {
			created.Name = "Dr. Samuel Okafor"
			require.NoError(t, repo.Update(ctx, created))

			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Dr. Samuel Okafor", got.Name)
		})

		t.Run("rename onto an existing name is rejected", func(t *testing.T) {
			other, err := repo.Create(ctx, &model.Vet{Name: "Dr. Ellen Carver"})
			require.NoError(t, err)

			other.Name = "Dr. Samuel Okafor"
			assert.ErrorIs(t, repo.Update(ctx, other), ErrVetNameExists)
		})

		t.Run("delete", func(t *testing.T) {
			require.NoError(t, repo.Delete(ctx, created.ID))
			_, err := repo.GetByID(ctx, created.ID)
			assert.ErrorIs(t, err, ErrVetNotFound)
		})
	})
}
