package models

import "time"

// Todo represents a single task item with its resolved label set
type Todo struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Labels    []*Label  `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the todo's id
func (t *Todo) GetID() int {
	return t.ID
}

// HasLabel reports whether the todo carries the given label
func (t *Todo) HasLabel(labelID int) bool {
	for _, l := range t.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}

// LabelIDs returns the ids of the todo's labels in stored order
func (t *Todo) LabelIDs() []int {
	ids := make([]int, len(t.Labels))
	for i, l := range t.Labels {
		ids[i] = l.ID
	}
	return ids
}
