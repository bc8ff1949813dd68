package models

// Label represents a named tag that can be applied to todos
// Label names are unique across the whole store, case-sensitive
type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID returns the label's id
func (l *Label) GetID() int {
	return l.ID
}
