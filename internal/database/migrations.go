package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		// Key/value documents (the board is stored under a single key)
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS kv_store (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}

		// Move history
		_, err = tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS move_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				item_id TEXT NOT NULL,
				item_title TEXT NOT NULL,
				from_column TEXT NOT NULL,
				to_column TEXT NOT NULL,
				from_index INTEGER NOT NULL,
				to_index INTEGER NOT NULL,
				kind TEXT NOT NULL CHECK (kind IN ('reorder', 'transfer')),
				moved_at DATETIME NOT NULL
			)
		`)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_move_history_moved_at
			ON move_history(moved_at DESC, id DESC)
		`)
		return err
	})
}
