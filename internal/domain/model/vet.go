package model

import (
	"strings"
)

// Vet is a veterinarian record.
type Vet struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// Validate checks the fields a form submission controls.
func (v *Vet) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return validationErrorf("vet name is required")
	}
	return nil
}
