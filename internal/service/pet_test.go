package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstylian/petclinic/internal/data"
	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// stubPetRepo is a map-backed PetRepository for service tests.
type stubPetRepo struct {
	pets   map[int]*model.Pet
	nextID int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: make(map[int]*model.Pet), nextID: 1}
}

func (r *stubPetRepo) Create(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	stored := *pet
	stored.ID = r.nextID
	r.nextID++
	r.pets[stored.ID] = &stored
	return &stored, nil
}

func (r *stubPetRepo) GetByID(ctx context.Context, id int) (*model.Pet, error) {
	pet, ok := r.pets[id]
	if !ok {
		return nil, data.ErrPetNotFound
	}
	copied := *pet
	return &copied, nil
}

func (r *stubPetRepo) List(ctx context.Context, nameFilter string) ([]*model.Pet, error) {
	var out []*model.Pet
	for id := 1; id < r.nextID; id++ {
		pet, ok := r.pets[id]
		if !ok {
			continue
		}
		if nameFilter != "" && pet.Name != nameFilter {
			continue
		}
		copied := *pet
		out = append(out, &copied)
	}
	return out, nil
}

func (r *stubPetRepo) Update(ctx context.Context, pet *model.Pet) error {
	if _, ok := r.pets[pet.ID]; !ok {
		return data.ErrPetNotFound
	}
	stored := *pet
	r.pets[pet.ID] = &stored
	return nil
}

func (r *stubPetRepo) Delete(ctx context.Context, id int) error {
	delete(r.pets, id)
	return nil
}

func newTestPetService(repo *stubPetRepo) *PetService {
	return NewPetService(repo, slog.New(slog.DiscardHandler))
}

func TestPetServiceSave(t *testing.T) {
	ctx := context.Background()
	actor := domainauth.User{ID: 7, Username: "admin"}

	t.Run("create records the actor", func(t *testing.T) {
		repo := newStubPetRepo()
		svc := newTestPetService(repo)

		created, err := svc.Save(ctx, &model.Pet{Name: "Milo", Age: 3, PetType: model.PetTypeCat}, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, 7, created.CreatedBy)
	})

	t.Run("update keeps authorship", func(t *testing.T) {
		repo := newStubPetRepo()
		svc := newTestPetService(repo)

		created, err := svc.Save(ctx, &model.Pet{Name: "Milo", Age: 3, PetType: model.PetTypeCat}, actor)
		require.NoError(t, err)

		edit := &model.Pet{ID: created.ID, Name: "Milo Jr", Age: 4, PetType: model.PetTypeDog}
		updated, err := svc.Save(ctx, edit, domainauth.User{ID: 99, Username: "other"})
		require.NoError(t, err)
		assert.Equal(t, "Milo Jr", updated.Name)
		assert.Equal(t, model.PetTypeDog, updated.PetType)
		assert.Equal(t, 7, updated.CreatedBy, "edits must not change who created the record")
	})

	t.Run("update of missing pet fails", func(t *testing.T) {
		svc := newTestPetService(newStubPetRepo())

		_, err := svc.Save(ctx, &model.Pet{ID: 42, Name: "Ghost", PetType: model.PetTypeCat}, actor)
		assert.ErrorIs(t, err, data.ErrPetNotFound)
	})

	t.Run("invalid pet is rejected before hitting the repo", func(t *testing.T) {
		repo := newStubPetRepo()
		svc := newTestPetService(repo)

		_, err := svc.Save(ctx, &model.Pet{Name: "  ", PetType: model.PetTypeCat}, actor)
		require.Error(t, err)
		assert.Empty(t, repo.pets)
	})
}

func TestPetServiceListAndDelete(t *testing.T) {
	ctx := context.Background()
	actor := domainauth.User{ID: 1}

	repo := newStubPetRepo()
	svc := newTestPetService(repo)

	for _, name := range []string{"Milo", "Rex", "Milo"} {
		_, err := svc.Save(ctx, &model.Pet{Name: name, PetType: model.PetTypeDog}, actor)
		require.NoError(t, err)
	}

	t.Run("list all", func(t *testing.T) {
		pets, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, pets, 3)
	})

	t.Run("list filtered by exact name", func(t *testing.T) {
		pets, err := svc.List(ctx, "Milo")
		require.NoError(t, err)
		assert.Len(t, pets, 2)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, 2))
		require.NoError(t, svc.Delete(ctx, 2))

		pets, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, pets, 2)
	})
}
