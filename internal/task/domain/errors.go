package domain

import "github.com/Real-Streeter/liberty-command/pkg/apperr"

var (
	ErrTaskNotFound = apperr.New(apperr.ErrNotFound, "Task not found")
)

// MissingTaskError reports a reorder entry naming a task that does not exist.
func MissingTaskError(id string) error {
	return apperr.Newf(apperr.ErrConflict, "task %s does not exist", id)
}

// MissingColumnError reports a reference to a column that does not exist.
func MissingColumnError(id string) error {
	return apperr.Newf(apperr.ErrConflict, "column %s does not exist", id)
}
