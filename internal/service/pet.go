package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anstylian/petclinic/internal/core"
	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// PetService handles pet record operations for the HTML screens.
type PetService struct {
	repo   core.PetRepository
	logger *slog.Logger
}

func NewPetService(repo core.PetRepository, logger *slog.Logger) *PetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PetService{repo: repo, logger: logger.With("component", "pets")}
}

// List returns pets, optionally filtered by exact name match.
func (s *PetService) List(ctx context.Context, nameFilter string) ([]*model.Pet, error) {
	pets, err := s.repo.List(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

func (s *PetService) Get(ctx context.Context, id int) (*model.Pet, error) {
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pet %d: %w", id, err)
	}
	return pet, nil
}

// Save creates the pet when its ID is zero and updates it otherwise. The
// creating user is recorded once; edits never change authorship.
func (s *PetService) Save(ctx context.Context, pet *model.Pet, actor domainauth.User) (*model.Pet, error) {
	if err := pet.Validate(); err != nil {
		return nil, err
	}

	if pet.ID == 0 {
		pet.CreatedBy = actor.ID
		created, err := s.repo.Create(ctx, pet)
		if err != nil {
			return nil, fmt.Errorf("create pet: %w", err)
		}
		s.logger.InfoContext(ctx, "pet created", "pet_id", created.ID, "user_id", actor.ID)
		return created, nil
	}

	existing, err := s.repo.GetByID(ctx, pet.ID)
	if err != nil {
		return nil, fmt.Errorf("load pet %d: %w", pet.ID, err)
	}
	existing.Name = pet.Name
	existing.OwnerName = pet.OwnerName
	existing.OwnerPhone = pet.OwnerPhone
	existing.Age = pet.Age
	existing.PetType = pet.PetType
	existing.VetID = pet.VetID

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update pet %d: %w", pet.ID, err)
	}
	s.logger.InfoContext(ctx, "pet updated", "pet_id", existing.ID, "user_id", actor.ID)
	return existing, nil
}

// Delete removes a pet. Deleting a missing pet is not an error.
func (s *PetService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}
