package database

import "errors"

// ErrNotFound is returned when a queried row does not exist.
// Services translate this into their own not-found errors.
var ErrNotFound = errors.New("record not found")
