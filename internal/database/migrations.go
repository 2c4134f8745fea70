package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			customer TEXT NOT NULL,
			items INTEGER NOT NULL,
			amount REAL NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('accepted', 'pending', 'declined')),
			valid_until TEXT,
			sales_person TEXT NOT NULL DEFAULT '',
			sort_key INTEGER NOT NULL
		)`,
		// Column pages are read in sort_key order within one status
		`CREATE INDEX IF NOT EXISTS idx_quotes_status_sort
			ON quotes(status, sort_key, id)`,
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
