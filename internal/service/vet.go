package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anstylian/petclinic/internal/core"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// VetService handles vet record operations.
type VetService struct {
	repo   core.VetRepository
	logger *slog.Logger
}

func NewVetService(repo core.VetRepository, logger *slog.Logger) *VetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VetService{repo: repo, logger: logger.With("component", "vets")}
}

func (s *VetService) List(ctx context.Context) ([]*model.Vet, error) {
	vets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vets: %w", err)
	}
	return vets, nil
}

func (s *VetService) Get(ctx context.Context, id int) (*model.Vet, error) {
	vet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vet %d: %w", id, err)
	}
	return vet, nil
}

// Save creates the vet when its ID is zero and updates it otherwise.
func (s *VetService) Save(ctx context.Context, vet *model.Vet) (*model.Vet, error) {
	if err := vet.Validate(); err != nil {
		return nil, err
	}

	if vet.ID == 0 {
		created, err := s.repo.Create(ctx, vet)
		if err != nil {
			return nil, fmt.Errorf("create vet: %w", err)
		}
		s.logger.InfoContext(ctx, "vet created", "vet_id", created.ID)
		return created, nil
	}

	if err := s.repo.Update(ctx, vet); err != nil {
		return nil, fmt.Errorf("update vet %d: %w", vet.ID, err)
	}
	s.logger.InfoContext(ctx, "vet updated", "vet_id", vet.ID)
	return vet, nil
}

// Delete removes a vet. Pets referencing it fall back to no assigned vet.
func (s *VetService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vet %d: %w", id, err)
	}
	return nil
}
