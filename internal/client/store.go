package client

import (
	"context"

	"github.com/thenoetrevino/listo/internal/models"
)

// Store holds the last-fetched snapshot of todos and labels for the
// presentation layer. Every mutation issues the API call and then
// unconditionally re-fetches the affected lists instead of patching the
// snapshot locally; failed mutations leave the snapshot unchanged.
type Store struct {
	api *Client

	todos  []*models.Todo
	labels []*models.Label
}

// NewStore creates a store backed by the given API client
func NewStore(api *Client) *Store {
	return &Store{api: api}
}

// Todos returns the cached todo snapshot
func (s *Store) Todos() []*models.Todo {
	return s.todos
}

// Labels returns the cached label snapshot
func (s *Store) Labels() []*models.Label {
	return s.labels
}

// Refresh re-fetches both lists
func (s *Store) Refresh(ctx context.Context) error {
	if err := s.refreshTodos(ctx); err != nil {
		return err
	}
	return s.refreshLabels(ctx)
}

func (s *Store) refreshTodos(ctx context.Context) error {
	todos, err := s.api.ListTodos(ctx)
	if err != nil {
		return err
	}
	s.todos = todos
	return nil
}

func (s *Store) refreshLabels(ctx context.Context) error {
	labels, err := s.api.ListLabels(ctx)
	if err != nil {
		return err
	}
	s.labels = labels
	return nil
}

// AddTodo creates a todo and resyncs the todo list
func (s *Store) AddTodo(ctx context.Context, text string) error {
	if _, err := s.api.CreateTodo(ctx, text); err != nil {
		return err
	}
	return s.refreshTodos(ctx)
}

// UpdateTodoText changes a todo's text and resyncs
func (s *Store) UpdateTodoText(ctx context.Context, id int, text string) error {
	if _, err := s.api.UpdateTodo(ctx, id, &text, nil, nil); err != nil {
		return err
	}
	return s.refreshTodos(ctx)
}

// ToggleTodo flips a todo's completed flag and resyncs
func (s *Store) ToggleTodo(ctx context.Context, id int) error {
	todo := s.findTodo(id)
	if todo == nil {
		return ErrNotFound
	}

	completed := !todo.Completed
	if _, err := s.api.UpdateTodo(ctx, id, nil, &completed, nil); err != nil {
		return err
	}
	return s.refreshTodos(ctx)
}

// ToggleTodoLabel attaches the label to the todo if absent, removes it if
// present, and resyncs
func (s *Store) ToggleTodoLabel(ctx context.Context, todoID, labelID int) error {
	todo := s.findTodo(todoID)
	if todo == nil {
		return ErrNotFound
	}

	labelIDs := ToggleLabelIDs(todo.LabelIDs(), labelID)
	if _, err := s.api.UpdateTodo(ctx, todoID, nil, nil, &labelIDs); err != nil {
		return err
	}
	return s.refreshTodos(ctx)
}

// DeleteTodo removes a todo and resyncs
func (s *Store) DeleteTodo(ctx context.Context, id int) error {
	if err := s.api.DeleteTodo(ctx, id); err != nil {
		return err
	}
	return s.refreshTodos(ctx)
}

// AddLabel creates a label and resyncs both lists
func (s *Store) AddLabel(ctx context.Context, name string) error {
	if _, err := s.api.CreateLabel(ctx, name); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// DeleteLabel removes a label and resyncs both lists; the server cascades
// the removal out of every todo's label set
func (s *Store) DeleteLabel(ctx context.Context, id int) error {
	if err := s.api.DeleteLabel(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// FilterByLabel returns the cached todos carrying the given label.
// A labelID of 0 means no filter. The filter never touches the server.
func (s *Store) FilterByLabel(labelID int) []*models.Todo {
	if labelID == 0 {
		return s.todos
	}

	filtered := []*models.Todo{}
	for _, t := range s.todos {
		if t.HasLabel(labelID) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func (s *Store) findTodo(id int) *models.Todo {
	for _, t := range s.todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ToggleLabelIDs returns ids with labelID added if absent or removed if
// present, treating the slice as a set
func ToggleLabelIDs(ids []int, labelID int) []int {
	out := make([]int, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == labelID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, labelID)
	}
	return out
}
