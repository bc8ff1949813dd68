package api

import (
	"errors"
	"net/http"

	labelsvc "github.com/thenoetrevino/listo/internal/services/label"
	todosvc "github.com/thenoetrevino/listo/internal/services/todo"
)

// statusForError maps domain errors to HTTP status codes:
// not-found becomes 404, validation 400, conflict 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, todosvc.ErrTodoNotFound),
		errors.Is(err, labelsvc.ErrLabelNotFound):
		return http.StatusNotFound

	case errors.Is(err, labelsvc.ErrDuplicateName):
		return http.StatusConflict

	case errors.Is(err, todosvc.ErrEmptyText),
		errors.Is(err, todosvc.ErrTextTooLong),
		errors.Is(err, todosvc.ErrUnknownLabel),
		errors.Is(err, todosvc.ErrInvalidID),
		errors.Is(err, labelsvc.ErrEmptyName),
		errors.Is(err, labelsvc.ErrNameTooLong),
		errors.Is(err, labelsvc.ErrInvalidID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
