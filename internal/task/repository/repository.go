package repository

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create appends the task to the end of its column (position = max+1, or 0 when empty)
	Create(ctx context.Context, task *domain.Task) error

	// FindByID finds a task by its ID, nil when missing
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// FindAll returns every task ordered by column position
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// Update saves the content fields of an existing task
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task and renumbers its former siblings 0..n-1.
	// Reports false when the task did not exist.
	Delete(ctx context.Context, id string) (bool, error)

	// Reorder applies every move in one transaction; nothing is applied
	// when any move fails
	Reorder(ctx context.Context, moves []domain.Move) error
}
