package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// CreateTodoRequest encapsulates data for creating a todo
type CreateTodoRequest struct {
	Text string
}

// UpdateTodoRequest encapsulates data for a partial todo update.
// Nil fields are left unchanged.
type UpdateTodoRequest struct {
	ID        int
	Text      *string
	Completed *bool
	LabelIDs  *[]int
}

// service implements Service interface
type service struct {
	todos  database.TodoStore
	labels database.LabelStore
}

// NewService creates a new todo service
func NewService(todos database.TodoStore, labels database.LabelStore) Service {
	return &service{
		todos:  todos,
		labels: labels,
	}
}

// ListTodos retrieves all todos with their resolved label sets
func (s *service) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	return s.todos.GetAll(ctx)
}

// GetTodo retrieves a single todo
func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	todo, err := s.todos.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrTodoNotFound
	}
	return todo, err
}

// CreateTodo creates a new todo with validation
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if len(req.Text) > 500 {
		return nil, ErrTextTooLong
	}

	todo, err := s.todos.Create(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo applies a partial update. Only the supplied fields change;
// when the label set is part of the request, the row change and the
// replacement commit in one transaction.
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidID
	}

	// Existence first, so an unknown todo reports not-found even when the
	// request also carries invalid fields
	existing, err := s.todos.GetByID(ctx, req.ID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	// Validate fields if provided
	if req.Text != nil && *req.Text == "" {
		return nil, ErrEmptyText
	}
	if req.Text != nil && len(*req.Text) > 500 {
		return nil, ErrTextTooLong
	}
	var labelIDs []int
	if req.LabelIDs != nil {
		labelIDs, err = s.normalizeLabelIDs(ctx, *req.LabelIDs)
		if err != nil {
			return nil, err
		}
	}

	// Determine final values
	text := existing.Text
	if req.Text != nil {
		text = *req.Text
	}

	completed := existing.Completed
	if req.Completed != nil {
		completed = *req.Completed
	}

	// The row change and the label-set replacement commit together; a
	// failed label write must not leave the text or flag updated
	if req.LabelIDs != nil {
		err = s.todos.UpdateWithLabels(ctx, req.ID, text, completed, labelIDs)
	} else {
		err = s.todos.Update(ctx, req.ID, text, completed)
	}
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return s.todos.GetByID(ctx, req.ID)
}

// DeleteTodo deletes a todo. Deleting the same id twice fails the second time.
func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if err := s.todos.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// normalizeLabelIDs deduplicates the requested label ids (the label set is
// order-insignificant) and rejects the update when any id is unknown
func (s *service) normalizeLabelIDs(ctx context.Context, ids []int) ([]int, error) {
	seen := make(map[int]struct{}, len(ids))
	deduped := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrUnknownLabel
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	if len(deduped) == 0 {
		return deduped, nil
	}

	count, err := s.labels.CountByIDs(ctx, deduped)
	if err != nil {
		return nil, fmt.Errorf("failed to check labels: %w", err)
	}
	if count != len(deduped) {
		return nil, ErrUnknownLabel
	}
	return deduped, nil
}
