package label

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/testutil"
)

func newTestService(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return NewService(repo.LabelRepo), repo
}

func TestCreateLabel(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateLabel(context.Background(), CreateLabelRequest{Name: "work"})
	if err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected label to get a store-assigned id")
	}
	if created.Name != "work" {
		t.Errorf("Expected name 'work', got %q", created.Name)
	}
}

func TestCreateLabelEmptyName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateLabel(context.Background(), CreateLabelRequest{Name: ""})
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestCreateLabelNameTooLong(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateLabel(context.Background(), CreateLabelRequest{Name: strings.Repeat("x", 51)})
	if !errors.Is(err, ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateLabelDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "work"}); err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}

	_, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "work"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateLabelNameCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "work"}); err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}

	// Differing case is a different name
	if _, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "Work"}); err != nil {
		t.Errorf("Expected distinct case to succeed, got %v", err)
	}
}

func TestDeleteLabelRemovesFromTodos(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	todo, err := repo.TodoRepo.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Failed to create todo: %v", err)
	}
	created, err := svc.CreateLabel(ctx, CreateLabelRequest{Name: "errand"})
	if err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}
	if err := repo.TodoRepo.SetLabels(ctx, todo.ID, []int{created.ID}); err != nil {
		t.Fatalf("Failed to attach label: %v", err)
	}

	if err := svc.DeleteLabel(ctx, created.ID); err != nil {
		t.Fatalf("Failed to delete label: %v", err)
	}

	labels, err := svc.ListLabels(ctx)
	if err != nil {
		t.Fatalf("Failed to list labels: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("Expected label gone from list, got %d labels", len(labels))
	}

	survivor, err := repo.TodoRepo.GetByID(ctx, todo.ID)
	if err != nil {
		t.Fatalf("Expected todo to survive: %v", err)
	}
	if len(survivor.Labels) != 0 {
		t.Errorf("Expected label removed from todo, got %d labels", len(survivor.Labels))
	}
}

func TestDeleteLabelNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteLabel(context.Background(), 999)
	if !errors.Is(err, ErrLabelNotFound) {
		t.Errorf("Expected ErrLabelNotFound, got %v", err)
	}
}
