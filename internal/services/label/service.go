package label

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
)

// Service defines all label-related business operations
type Service interface {
	ListLabels(ctx context.Context) ([]*models.Label, error)
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name string
}

// service implements Service interface
type service struct {
	labels database.LabelStore
}

// NewService creates a new label service
func NewService(labels database.LabelStore) Service {
	return &service{labels: labels}
}

// ListLabels retrieves all labels
func (s *service) ListLabels(ctx context.Context) ([]*models.Label, error) {
	return s.labels.GetAll(ctx)
}

// CreateLabel creates a new label. Name uniqueness is case-sensitive and
// checked here at the service boundary, not by the store schema.
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if len(req.Name) > 50 {
		return nil, ErrNameTooLong
	}

	_, err := s.labels.GetByName(ctx, req.Name)
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("failed to check label name: %w", err)
	}

	created, err := s.labels.Create(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return created, nil
}

// DeleteLabel deletes a label. The store cascades removal of the label
// from every todo that referenced it; the todos themselves survive.
func (s *service) DeleteLabel(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if err := s.labels.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrLabelNotFound
		}
		return fmt.Errorf("failed to delete label: %w", err)
	}
	return nil
}
