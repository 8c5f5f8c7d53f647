package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/anstylian/petclinic/internal/data/pgxutil"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// PetRepo provides database operations for pets.
type PetRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewPetRepo creates a new PetRepo with the real time provider.
func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewPetRepoWithTimeProvider creates a new PetRepo with a custom time provider (useful for tests).
func NewPetRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *PetRepo {
	return &PetRepo{DB: db, timeProvider: tp}
}

// Create inserts a new pet.
func (r *PetRepo) Create(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	if pet == nil {
		return nil, errors.New("pet is required")
	}
	if err := pet.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO pets (name, owner_name, owner_phone, age, pet_type, vet_id, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, name, owner_name, owner_phone, age, pet_type, vet_id, created_at, created_by
		`,
			strings.TrimSpace(pet.Name),
			pet.OwnerName,
			pet.OwnerPhone,
			pet.Age,
			pet.PetType,
			pet.VetID,
			createdAt,
			pet.CreatedBy,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a pet by ID.
func (r *PetRepo) GetByID(ctx context.Context, id int) (*model.Pet, error) {
	var out model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, name, owner_name, owner_phone, age, pet_type, vet_id, created_at, created_by
			FROM pets
			WHERE id = $1
		`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet by ID: %w", err)
	}
	return &out, nil
}

// List retrieves pets, optionally filtered by exact name.
func (r *PetRepo) List(ctx context.Context, nameFilter string) ([]*model.Pet, error) {
	query := `
		SELECT id, name, owner_name, owner_phone, age, pet_type, vet_id, created_at, created_by
		FROM pets
		ORDER BY id`
	args := []any{}
	if nameFilter != "" {
		query = `
			SELECT id, name, owner_name, owner_phone, age, pet_type, vet_id, created_at, created_by
			FROM pets
			WHERE name = $1
			ORDER BY id`
		args = append(args, nameFilter)
	}

	var rowsOut []model.Pet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Pet])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	res := make([]*model.Pet, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates an existing pet.
func (r *PetRepo) Update(ctx context.Context, pet *model.Pet) error {
	if pet == nil {
		return errors.New("pet is required")
	}
	if err := pet.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE pets
			SET name = $2, owner_name = $3, owner_phone = $4, age = $5, pet_type = $6, vet_id = $7
			WHERE id = $1
		`,
			pet.ID,
			strings.TrimSpace(pet.Name),
			pet.OwnerName,
			pet.OwnerPhone,
			pet.Age,
			pet.PetType,
			pet.VetID,
		)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	}); err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if affected == 0 {
		return ErrPetNotFound
	}
	return nil
}

// Delete removes a pet by ID. Deleting an absent pet is not an error.
func (r *PetRepo) Delete(ctx context.Context, id int) error {
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
		return err
	}); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}
