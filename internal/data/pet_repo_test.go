package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstylian/petclinic/internal/domain/model"
	"github.com/anstylian/petclinic/internal/testutil"
)

// fixedTimeProvider pins timestamps for deterministic assertions.
type fixedTimeProvider struct{ now time.Time }

func (f *fixedTimeProvider) Now() time.Time { return f.now }

func TestPetRepo_Integration_CRUD(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		repo := NewPetRepoWithTimeProvider(db, &fixedTimeProvider{now: now})

		created, err := repo.Create(ctx, &model.Pet{
			Name:       "Milo",
			OwnerName:  "Dana Reyes",
			OwnerPhone: "555-0100",
			Age:        3,
			PetType:    model.PetTypeCat,
			CreatedBy:  7,
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		assert.Equal(t, now, created.CreatedAt.UTC())
		assert.Equal(t, 7, created.CreatedBy)

		t.Run("get by id", func(t *testing.T) {
			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Milo", got.Name)
			assert.Equal(t, model.PetTypeCat, got.PetType)
		})

		t.Run("get missing pet", func(t *testing.T) {
			_, err := repo.GetByID(ctx, created.ID+1000)
			assert.ErrorIs(t, err, ErrPetNotFound)
		})

		t.Run("list with and without filter", func(t *testing.T) {
			_, err := repo.Create(ctx, &model.Pet{Name: "Rex", Age: 5, PetType: model.PetTypeDog})
			require.NoError(t, err)

			all, err := repo.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 2)

			filtered, err := repo.List(ctx, "Rex")
			require.NoError(t, err)
			require.Len(t, filtered, 1)
			assert.Equal(t, "Rex", filtered[0].Name)

			none, err := repo.List(ctx, "Re")
			require.NoError(t, err)
			assert.Empty(t, none, "filter is exact match, not prefix")
		})

		t.Run("update", func(t *testing.T) {
			created.Name = "Milo Jr"
			created.Age = 4
			require.NoError(t, repo.Update(ctx, created))

			got, err := repo.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Milo Jr", got.Name)
			assert.Equal(t, 4, got.Age)
			assert.Equal(t, 7, got.CreatedBy, "update must not touch authorship")
		})

		t.Run("update missing pet", func(t *testing.T) {
			ghost := &model.Pet{ID: created.ID + 1000, Name: "Ghost", PetType: model.PetTypeCat}
			assert.ErrorIs(t, repo.Update(ctx, ghost), ErrPetNotFound)
		})

		t.Run("delete is idempotent", func(t *testing.T) {
			require.NoError(t, repo.Delete(ctx, created.ID))
			require.NoError(t, repo.Delete(ctx, created.ID))

			_, err := repo.GetByID(ctx, created.ID)
			assert.ErrorIs(t, err, ErrPetNotFound)
		})
	})
}

func TestPetRepo_Integration_VetReference(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		petRepo := NewPetRepo(db)
		vetRepo := NewVetRepo(db)

		vet, err := vetRepo.Create(ctx, &model.Vet{Name: "Dr. Ellen Carver"})
		require.NoError(t, err)

		pet, err := petRepo.Create(ctx, &model.Pet{
			Name:    "Ziggy",
			Age:     1,
			PetType: model.PetTypeLizard,
			VetID:   &vet.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, pet.VetID)
		assert.Equal(t, vet.ID, *pet.VetID)

		// Deleting the vet detaches the pet instead of deleting it.
		require.NoError(t, vetRepo.Delete(ctx, vet.ID))

		got, err := petRepo.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Nil(t, got.VetID)
	})
}
