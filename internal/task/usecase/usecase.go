package usecase

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask validates the input and appends the task to its column
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)

	// UpdateTask applies a partial update to the content fields of a task
	UpdateTask(ctx context.Context, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask removes a task and closes the gap it leaves in its column
	DeleteTask(ctx context.Context, taskID string) error

	// Reorder validates and applies a batch of placements atomically
	Reorder(ctx context.Context, moves []domain.Move) error
}

// CreateTaskInput carries the fields of a new task. Empty ColumnID means backlog.
type CreateTaskInput struct {
	ColumnID string
	Content  string
	Owner    *string
	Tag      *string
	Priority string
	Estimate *string
	DueDate  *string
}

// TaskUpdateRequest represents the fields that can be updated.
// A nil field is kept; an empty string clears an optional field.
type TaskUpdateRequest struct {
	Content  *string `json:"content,omitempty"`
	Owner    *string `json:"owner,omitempty"`
	Tag      *string `json:"tag,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Estimate *string `json:"est,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
}

// ColumnLookup is the part of the column repository tasks depend on
type ColumnLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}
