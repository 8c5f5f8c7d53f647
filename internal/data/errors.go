package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrUserNotFound is returned when no user row matches a username.
	ErrUserNotFound = errors.New("user not found")

	// ErrPetNotFound is returned when a pet is not found.
	ErrPetNotFound = errors.New("pet not found")

	// ErrVetNotFound is returned when a vet is not found.
	ErrVetNotFound = errors.New("vet not found")
	// ErrVetNameExists is returned when creating or renaming a vet to a duplicate name.
	ErrVetNameExists = errors.New("vet name already exists")
)
