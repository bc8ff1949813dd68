package todo

import "errors"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyText    = errors.New("text cannot be empty")
	ErrTextTooLong  = errors.New("text cannot exceed 500 characters")
	ErrInvalidID    = errors.New("invalid todo ID")
	ErrUnknownLabel = errors.New("label does not exist")

	// Business logic errors
	ErrTodoNotFound = errors.New("todo not found")
)
