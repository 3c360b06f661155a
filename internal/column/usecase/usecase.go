package usecase

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/column/dto"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
)

// BoardUsecase defines the interface for reading the board
type BoardUsecase interface {
	// GetBoard returns every column in display order with its tasks in position order
	GetBoard(ctx context.Context) ([]dto.BoardColumn, error)

	// SearchBoard is GetBoard keeping only tasks whose content, owner or tag
	// match query. Columns are always present.
	SearchBoard(ctx context.Context, query string) ([]dto.BoardColumn, error)

	// EnsureDefaultColumns inserts any missing default column
	EnsureDefaultColumns(ctx context.Context) error
}

// TaskLister is the part of the task repository the board depends on
type TaskLister interface {
	FindAll(ctx context.Context) ([]*taskdomain.Task, error)
}

// ColumnStore is the part of the column repository the board depends on
type ColumnStore interface {
	FindAll(ctx context.Context) ([]*domain.Column, error)
	EnsureColumns(ctx context.Context, columns []domain.Column) error
}
