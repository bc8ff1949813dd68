package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/listo/internal/testutil"
)

func TestCreateLabel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := &LabelRepo{db: db}

	label, err := repo.Create(context.Background(), "errand")
	if err != nil {
		t.Fatalf("Failed to create label: %v", err)
	}
	if label.ID == 0 {
		t.Error("Expected label to get a store-assigned id")
	}
	if label.Name != "errand" {
		t.Errorf("Expected name 'errand', got %q", label.Name)
	}
}

func TestGetAllLabelsCreationOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := &LabelRepo{db: db}

	a := testutil.CreateTestLabel(t, db, "work")
	b := testutil.CreateTestLabel(t, db, "errand")

	labels, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("Failed to get labels: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(labels))
	}
	if labels[0].ID != a || labels[1].ID != b {
		t.Errorf("Expected order [%d %d], got [%d %d]", a, b, labels[0].ID, labels[1].ID)
	}
}

func TestGetLabelByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := &LabelRepo{db: db}
	ctx := context.Background()

	id := testutil.CreateTestLabel(t, db, "errand")

	label, err := repo.GetByName(ctx, "errand")
	if err != nil {
		t.Fatalf("Failed to get label by name: %v", err)
	}
	if label.ID != id {
		t.Errorf("Expected id %d, got %d", id, label.ID)
	}

	// Lookup is case-sensitive
	if _, err := repo.GetByName(ctx, "Errand"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for different case, got %v", err)
	}
}

func TestCountLabelsByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := &LabelRepo{db: db}
	ctx := context.Background()

	a := testutil.CreateTestLabel(t, db, "a")
	b := testutil.CreateTestLabel(t, db, "b")

	count, err := repo.CountByIDs(ctx, []int{a, b})
	if err != nil {
		t.Fatalf("Failed to count labels: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}

	count, err = repo.CountByIDs(ctx, []int{a, 999})
	if err != nil {
		t.Fatalf("Failed to count labels: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	count, err = repo.CountByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to count labels: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected count 0 for empty input, got %d", count)
	}
}

func TestDeleteLabelCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	labels := &LabelRepo{db: db}
	todos := &TodoRepo{db: db}
	ctx := context.Background()

	todoID := testutil.CreateTestTodo(t, db, "buy milk")
	labelID := testutil.CreateTestLabel(t, db, "errand")
	testutil.AttachLabel(t, db, todoID, labelID)

	if err := labels.Delete(ctx, labelID); err != nil {
		t.Fatalf("Failed to delete label: %v", err)
	}

	// The todo survives with an empty label set
	todo, err := todos.GetByID(ctx, todoID)
	if err != nil {
		t.Fatalf("Expected todo to survive label delete: %v", err)
	}
	if len(todo.Labels) != 0 {
		t.Errorf("Expected empty label set after cascade, got %d labels", len(todo.Labels))
	}
}

func TestDeleteLabelNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := &LabelRepo{db: db}

	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
