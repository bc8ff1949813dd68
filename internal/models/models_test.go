package models

import "testing"

func TestHasLabel(t *testing.T) {
	todo := &Todo{
		ID:   1,
		Text: "buy milk",
		Labels: []*Label{
			{ID: 2, Name: "errand"},
			{ID: 5, Name: "home"},
		},
	}

	if !todo.HasLabel(2) {
		t.Error("Expected todo to have label 2")
	}
	if !todo.HasLabel(5) {
		t.Error("Expected todo to have label 5")
	}
	if todo.HasLabel(3) {
		t.Error("Expected todo to not have label 3")
	}
}

func TestHasLabelEmpty(t *testing.T) {
	todo := &Todo{ID: 1, Text: "no labels"}
	if todo.HasLabel(1) {
		t.Error("Expected todo with no labels to report false")
	}
}

func TestLabelIDs(t *testing.T) {
	todo := &Todo{
		ID:   1,
		Text: "buy milk",
		Labels: []*Label{
			{ID: 3, Name: "errand"},
			{ID: 7, Name: "urgent"},
		},
	}

	ids := todo.LabelIDs()
	if len(ids) != 2 {
		t.Fatalf("Expected 2 ids, got %d", len(ids))
	}
	if ids[0] != 3 || ids[1] != 7 {
		t.Errorf("Expected [3 7], got %v", ids)
	}
}

func TestLabelIDsEmpty(t *testing.T) {
	todo := &Todo{ID: 1, Text: "no labels"}
	if ids := todo.LabelIDs(); len(ids) != 0 {
		t.Errorf("Expected empty ids, got %v", ids)
	}
}
