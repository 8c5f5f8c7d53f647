// Package core defines repository interfaces consumed by the service layer.
package core

import (
	"context"

	"github.com/anstylian/petclinic/internal/domain/model"
)

// PetRepository provides persistence for pet records.
type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) (*model.Pet, error)
	GetByID(ctx context.Context, id int) (*model.Pet, error)
	List(ctx context.Context, nameFilter string) ([]*model.Pet, error)
	Update(ctx context.Context, pet *model.Pet) error
	Delete(ctx context.Context, id int) error
}

// VetRepository provides persistence for veterinarian records.
type VetRepository interface {
	Create(ctx context.Context, vet *model.Vet) (*model.Vet, error)
	GetByID(ctx context.Context, id int) (*model.Vet, error)
	List(ctx context.Context) ([]*model.Vet, error)
	Update(ctx context.Context, vet *model.Vet) error
	Delete(ctx context.Context, id int) error
}
