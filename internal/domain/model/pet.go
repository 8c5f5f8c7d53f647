package model

import (
	"fmt"
	"strings"
	"time"
)

// Pet type identifiers, matching the values stored in pets.pet_type.
const (
	PetTypeCat    = 1
	PetTypeDog    = 2
	PetTypeLizard = 3
	PetTypeHorse  = 4
)

// Pet is a clinic patient record.
type Pet struct {
	ID         int       `db:"id"`
	Name       string    `db:"name"`
	OwnerName  string    `db:"owner_name"`
	OwnerPhone string    `db:"owner_phone"`
	Age        int       `db:"age"`
	PetType    int       `db:"pet_type"`
	VetID      *int      `db:"vet_id"`
	CreatedAt  time.Time `db:"created_at"`
	CreatedBy  int       `db:"created_by"`
}

// PetTypeOption pairs a pet type id with its display name for form selects.
type PetTypeOption struct {
	ID   int
	Name string
}

// PetTypeOptions returns the selectable pet types in display order.
func PetTypeOptions() []PetTypeOption {
	return []PetTypeOption{
		{ID: PetTypeCat, Name: "Cat"},
		{ID: PetTypeDog, Name: "Dog"},
		{ID: PetTypeLizard, Name: "Lizard"},
		{ID: PetTypeHorse, Name: "Horse"},
	}
}

// PetTypeName returns the display name for a pet type id, or "Unknown".
func PetTypeName(id int) string {
	for _, opt := range PetTypeOptions() {
		if opt.ID == id {
			return opt.Name
		}
	}
	return "Unknown"
}

// Validate checks the fields a form submission controls.
func (p *Pet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationErrorf("pet name is required")
	}
	if p.Age < 0 {
		return validationErrorf("pet age cannot be negative")
	}
	if PetTypeName(p.PetType) == "Unknown" {
		return validationErrorf(fmt.Sprintf("invalid pet type: %d", p.PetType))
	}
	return nil
}
