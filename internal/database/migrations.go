package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Todos table. AUTOINCREMENT keeps deleted ids from being reused.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Labels table. Name uniqueness is enforced by the label service,
	// not by a UNIQUE constraint here.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS labels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Todo-labels join table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todo_labels (
			todo_id INTEGER NOT NULL,
			label_id INTEGER NOT NULL,
			PRIMARY KEY (todo_id, label_id),
			FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE,
			FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Indexes for the listTodos join and cascade lookups
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todo_labels_todo ON todo_labels(todo_id)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todo_labels_label ON todo_labels(label_id)
	`)
	return err
}
