package label

import "errors"

// Label-related errors
var (
	// Validation errors
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrNameTooLong = errors.New("name cannot exceed 50 characters")
	ErrInvalidID   = errors.New("invalid label ID")

	// Business logic errors
	ErrLabelNotFound = errors.New("label not found")
	ErrDuplicateName = errors.New("label name already exists")
)
