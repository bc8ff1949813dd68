package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	-- Todos table
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Labels table (name uniqueness is enforced by the service layer)
	CREATE TABLE IF NOT EXISTS labels (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	-- Todo-labels join table
	CREATE TABLE IF NOT EXISTS todo_labels (
		todo_id INTEGER NOT NULL,
		label_id INTEGER NOT NULL,
		PRIMARY KEY (todo_id, label_id),
		FOREIGN KEY (todo_id) REFERENCES todos(id) ON DELETE CASCADE,
		FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_todo_labels_todo ON todo_labels(todo_id);
	CREATE INDEX IF NOT EXISTS idx_todo_labels_label ON todo_labels(label_id);
	`

	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// CreateTestTodo creates a test todo and returns its ID
func CreateTestTodo(t *testing.T, db *sql.DB, text string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (text) VALUES (?)", text)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestLabel creates a test label and returns its ID
func CreateTestLabel(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO labels (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// AttachLabel associates a label with a todo
func AttachLabel(t *testing.T, db *sql.DB, todoID, labelID int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO todo_labels (todo_id, label_id) VALUES (?, ?)", todoID, labelID)
	if err != nil {
		t.Fatalf("Failed to attach label to todo: %v", err)
	}
}
