package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/listo/internal/models"
)

// TodoRepo handles pure data access for todos
// No business logic, no validation - just database operations
type TodoRepo struct {
	db *sql.DB
}

// Create inserts a new todo. The store assigns the id; completed
// starts false and the label set starts empty.
func (r *TodoRepo) Create(ctx context.Context, text string) (*models.Todo, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (text) VALUES (?)`,
		text,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get todo id: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single todo with its resolved label set
func (r *TodoRepo) GetByID(ctx context.Context, id int) (*models.Todo, error) {
	todo := &models.Todo{}
	var createdAt, updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, text, completed, created_at, updated_at FROM todos WHERE id = ?`,
		id,
	).Scan(&todo.ID, &todo.Text, &todo.Completed, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	todo.CreatedAt = createdAt.Time
	todo.UpdatedAt = updatedAt.Time

	labels, err := r.labelsForTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	todo.Labels = labels

	return todo, nil
}

// GetAll retrieves every todo in creation (id) order with labels resolved
func (r *TodoRepo) GetAll(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, completed, created_at, updated_at FROM todos ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	byID := make(map[int]*models.Todo)
	for rows.Next() {
		todo := &models.Todo{Labels: []*models.Label{}}
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&todo.ID, &todo.Text, &todo.Completed, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		todo.CreatedAt = createdAt.Time
		todo.UpdatedAt = updatedAt.Time
		todos = append(todos, todo)
		byID[todo.ID] = todo
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Resolve all label sets in a single join rather than one query per todo
	labelRows, err := r.db.QueryContext(ctx, `
		SELECT tl.todo_id, l.id, l.name
		FROM labels l
		INNER JOIN todo_labels tl ON l.id = tl.label_id
		ORDER BY tl.todo_id, l.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo labels: %w", err)
	}
	defer labelRows.Close()

	for labelRows.Next() {
		var todoID int
		label := &models.Label{}
		if err := labelRows.Scan(&todoID, &label.ID, &label.Name); err != nil {
			return nil, err
		}
		if todo, ok := byID[todoID]; ok {
			todo.Labels = append(todo.Labels, label)
		}
	}

	return todos, labelRows.Err()
}

// Update replaces a todo's text and completed flag
func (r *TodoRepo) Update(ctx context.Context, id int, text string, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE todos SET text = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		text, completed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return requireRow(result)
}

// UpdateWithLabels replaces a todo's text and completed flag together with
// its label set in a single transaction. A failed label write rolls the row
// change back, so the todo is never left half-updated.
func (r *TodoRepo) UpdateWithLabels(ctx context.Context, id int, text string, completed bool, labelIDs []int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE todos SET text = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			text, completed, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update todo %d: %w", id, err)
		}
		if err := requireRow(result); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM todo_labels WHERE todo_id = ?`, id); err != nil {
			return err
		}
		for _, labelID := range labelIDs {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO todo_labels (todo_id, label_id) VALUES (?, ?)`,
				id, labelID,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// SetLabels replaces all labels for a todo with the given label IDs.
// The replacement happens atomically inside a transaction.
func (r *TodoRepo) SetLabels(ctx context.Context, todoID int, labelIDs []int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Remove all existing labels
		_, err := tx.ExecContext(ctx, `DELETE FROM todo_labels WHERE todo_id = ?`, todoID)
		if err != nil {
			return err
		}

		// Add new labels
		for _, labelID := range labelIDs {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO todo_labels (todo_id, label_id) VALUES (?, ?)`,
				todoID, labelID,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a todo. Its label associations go with it via cascade.
func (r *TodoRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return requireRow(result)
}

// labelsForTodo retrieves the labels associated with one todo, id order
func (r *TodoRepo) labelsForTodo(ctx context.Context, todoID int) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.name
		FROM labels l
		INNER JOIN todo_labels tl ON l.id = tl.label_id
		WHERE tl.todo_id = ?
		ORDER BY l.id
	`, todoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels for todo %d: %w", todoID, err)
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

// requireRow converts a zero-rows-affected result into ErrNotFound
func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
