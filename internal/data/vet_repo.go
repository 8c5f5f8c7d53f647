package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anstylian/petclinic/internal/data/pgxutil"
	"github.com/anstylian/petclinic/internal/domain/model"
)

// VetRepo provides database operations for veterinarians.
type VetRepo struct {
	DB *sql.DB
}

// NewVetRepo creates a new VetRepo.
func NewVetRepo(db *sql.DB) *VetRepo {
	return &VetRepo{DB: db}
}

// Create inserts a new vet.
func (r *VetRepo) Create(ctx context.Context, vet *model.Vet) (*model.Vet, error) {
	if vet == nil {
		return nil, errors.New("vet is required")
	}
	if err := vet.Validate(); err != nil {
		return nil, err
	}

	var out model.Vet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO vets (name) VALUES ($1)
			RETURNING id, name
		`, strings.TrimSpace(vet.Name))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vet])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves a vet by ID.
func (r *VetRepo) GetByID(ctx context.Context, id int) (*model.Vet, error) {
	var out model.Vet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT id, name FROM vets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vet])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVetNotFound
		}
		return nil, fmt.Errorf("failed to get vet by ID: %w", err)
	}
	return &out, nil
}

// List retrieves all vets.
func (r *VetRepo) List(ctx context.Context) ([]*model.Vet, error) {
	var rowsOut []model.Vet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT id, name FROM vets ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Vet])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list vets: %w", err)
	}

	res := make([]*model.Vet, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates an existing vet.
func (r *VetRepo) Update(ctx context.Context, vet *model.Vet) error {
	if vet == nil {
		return errors.New("vet is required")
	}
	if err := vet.Validate(); err != nil {
		return err
	}

	var affected int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `UPDATE vets SET name = $2 WHERE id = $1`,
			vet.ID, strings.TrimSpace(vet.Name))
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	}); err != nil {
		return r.mapWriteErr(err)
	}
	if affected == 0 {
		return ErrVetNotFound
	}
	return nil
}

// Delete removes a vet by ID. Pets referencing it fall back to no vet.
func (r *VetRepo) Delete(ctx context.Context, id int) error {
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `DELETE FROM vets WHERE id = $1`, id)
		return err
	}); err != nil {
		return fmt.Errorf("failed to delete vet: %w", err)
	}
	return nil
}

// mapWriteErr converts unique-violation errors into the duplicate-name sentinel.
func (r *VetRepo) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrVetNameExists
	}
	return fmt.Errorf("failed to write vet: %w", err)
}
