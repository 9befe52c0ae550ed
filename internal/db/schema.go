package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Schema bootstrap. The original deployment let the document store
// create collections on first write; here the tables are created on
// startup so a fresh database is usable without a migration step.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'User',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id UUID PRIMARY KEY,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT NOT NULL,
		status TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		user_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_user_created ON complaints (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints (status)`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_category ON complaints (category)`,
	`CREATE INDEX IF NOT EXISTS idx_complaints_date ON complaints (date DESC)`,
}

// Migrate runs in one transaction so a failed statement leaves no
// half-created schema behind.
func (s *Store) Migrate(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
