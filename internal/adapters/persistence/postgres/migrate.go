package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

const createQuotesTable = `
CREATE TABLE IF NOT EXISTS quotes (
    id         BIGSERIAL PRIMARY KEY,
    content    TEXT NOT NULL CHECK (content <> ''),
    author     TEXT NOT NULL DEFAULT '',
    category   TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the quotes table if it does not exist. It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createQuotesTable); err != nil {
		return fmt.Errorf("Migrate: %w", err)
	}

	return nil
}
