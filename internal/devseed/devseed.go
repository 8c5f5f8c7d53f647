// Package devseed loads demo data into a development database. It never
// runs in production; bootstrap calls it only when dev mode is enabled.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// sha1("admin"); the demo account logs in with admin/admin.
const adminPasswordDigest = "d033e22ae348aeb5660fc2140aec35850c4da997"

// Run seeds the demo admin account and a handful of vets and pets.
// Every insert is idempotent, so restarting the server does not duplicate
// rows.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedUsers(ctx, db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedVets(ctx, db); err != nil {
		return fmt.Errorf("seed vets: %w", err)
	}
	if err := seedPets(ctx, db); err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}

	logger.InfoContext(ctx, "development seed data loaded")
	return nil
}

func seedUsers(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING`,
		"admin", adminPasswordDigest)
	return err
}

func seedVets(ctx context.Context, db *sql.DB) error {
	for _, name := range []string{"Dr. Ellen Carver", "Dr. Sam Okafor"} {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO vets (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return nil
}

func seedPets(ctx context.Context, db *sql.DB) error {
	pets := []struct {
		name       string
		ownerName  string
		ownerPhone string
		age        int
		petType    int
	}{
		{"Milo", "Dana Reyes", "555-0100", 3, 1},
		{"Rex", "Priya Nair", "555-0101", 5, 2},
		{"Ziggy", "Tom Hale", "555-0102", 1, 3},
	}

	for _, p := range pets {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM pets WHERE name = $1 AND owner_name = $2)`,
			p.name, p.ownerName).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO pets (name, owner_name, owner_phone, age, pet_type, created_by)
			SELECT $1, $2, $3, $4, $5, id FROM users WHERE username = 'admin'`,
			p.name, p.ownerName, p.ownerPhone, p.age, p.petType); err != nil {
			return err
		}
	}
	return nil
}
