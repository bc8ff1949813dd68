// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/listo/internal/models"
)

// TodoStore defines the todo data operations used by the todo service.
type TodoStore interface {
	Create(ctx context.Context, text string) (*models.Todo, error)
	GetByID(ctx context.Context, id int) (*models.Todo, error)
	GetAll(ctx context.Context) ([]*models.Todo, error)
	Update(ctx context.Context, id int, text string, completed bool) error
	UpdateWithLabels(ctx context.Context, id int, text string, completed bool, labelIDs []int) error
	Delete(ctx context.Context, id int) error
}

// LabelStore defines the label data operations used by the label service.
type LabelStore interface {
	Create(ctx context.Context, name string) (*models.Label, error)
	GetAll(ctx context.Context) ([]*models.Label, error)
	GetByID(ctx context.Context, id int) (*models.Label, error)
	GetByName(ctx context.Context, name string) (*models.Label, error)
	CountByIDs(ctx context.Context, ids []int) (int, error)
	Delete(ctx context.Context, id int) error
}
