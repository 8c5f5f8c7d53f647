package httpx

import (
	"context"
	"sort"
	"sync"

	"github.com/anstylian/petclinic/internal/data"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// memPetRepo is a map-backed PetRepository for router tests.
type memPetRepo struct {
	mu     sync.Mutex
	pets   map[int]*model.Pet
	nextID int
}

func newMemPetRepo() *memPetRepo {
	return &memPetRepo{pets: make(map[int]*model.Pet), nextID: 1}
}

func (r *memPetRepo) Create(_ context.Context, pet *model.Pet) (*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *pet
	stored.ID = r.nextID
	r.nextID++
	r.pets[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *memPetRepo) GetByID(_ context.Context, id int) (*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, data.ErrPetNotFound
	}
	copied := *pet
	return &copied, nil
}

func (r *memPetRepo) List(_ context.Context, nameFilter string) ([]*model.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Pet
	for _, pet := range r.pets {
		if nameFilter != "" && pet.Name != nameFilter {
			continue
		}
		copied := *pet
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPetRepo) Update(_ context.Context, pet *model.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; !ok {
		return data.ErrPetNotFound
	}
	stored := *pet
	r.pets[pet.ID] = &stored
	return nil
}

func (r *memPetRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	delete(r.pets, id)
	r.mu.Unlock()
	return nil
}

// memVetRepo is a map-backed VetRepository for router tests.
type memVetRepo struct {
	mu     sync.Mutex
	vets   map[int]*model.Vet
	nextID int
}

func newMemVetRepo() *memVetRepo {
	return &memVetRepo{vets: make(map[int]*model.Vet), nextID: 1}
}

func (r *memVetRepo) Create(_ context.Context, vet *model.Vet) (*model.Vet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.vets {
		if existing.Name == vet.Name {
			return nil, data.ErrVetNameExists
		}
	}
	stored := *vet
	stored.ID = r.nextID
	r.nextID++
	r.vets[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *memVetRepo) GetByID(_ context.Context, id int) (*model.Vet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vet, ok := r.vets[id]
	if !ok {
		return nil, data.ErrVetNotFound
	}
	copied := *vet
	return &copied, nil
}

func (r *memVetRepo) List(_ context.Context) ([]*model.Vet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Vet
	for _, vet := range r.vets {
		copied := *vet
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memVetRepo) Update(_ context.Context, vet *model.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vets[vet.ID]; !ok {
		return data.ErrVetNotFound
	}
	stored := *vet
	r.vets[vet.ID] = &stored
	return nil
}

func (r *memVetRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	delete(r.vets, id)
	r.mu.Unlock()
	return nil
}
