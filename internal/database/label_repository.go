package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thenoetrevino/listo/internal/models"
)

// LabelRepo handles pure data access for labels
type LabelRepo struct {
	db *sql.DB
}

// Create inserts a new label
func (r *LabelRepo) Create(ctx context.Context, name string) (*models.Label, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO labels (name) VALUES (?)`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get label id: %w", err)
	}

	return &models.Label{ID: int(id), Name: name}, nil
}

// GetAll retrieves every label in creation (id) order
func (r *LabelRepo) GetAll(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM labels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.Name); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// GetByID retrieves a single label
func (r *LabelRepo) GetByID(ctx context.Context, id int) (*models.Label, error) {
	label := &models.Label{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM labels WHERE id = ?`,
		id,
	).Scan(&label.ID, &label.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label %d: %w", id, err)
	}
	return label, nil
}

// GetByName retrieves a label by exact (case-sensitive) name
func (r *LabelRepo) GetByName(ctx context.Context, name string) (*models.Label, error) {
	label := &models.Label{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM labels WHERE name = ?`,
		name,
	).Scan(&label.ID, &label.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label %q: %w", name, err)
	}
	return label, nil
}

// CountByIDs returns how many of the given label ids exist
func (r *LabelRepo) CountByIDs(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT id) FROM labels WHERE id IN (`+placeholders+`)`,
		args...,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count labels: %w", err)
	}
	return count, nil
}

// Delete removes a label (cascade removes todo associations)
func (r *LabelRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete label %d: %w", id, err)
	}
	return requireRow(result)
}
