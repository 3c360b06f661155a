package repository

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/column/domain"
)

// ColumnRepository defines the interface for board column data access
type ColumnRepository interface {
	// FindAll returns every column ordered by display order
	FindAll(ctx context.Context) ([]*domain.Column, error)

	// FindByID returns nil when the column does not exist
	FindByID(ctx context.Context, id string) (*domain.Column, error)

	// Exists reports whether a column with id exists
	Exists(ctx context.Context, id string) (bool, error)

	// EnsureColumns inserts the given columns, leaving existing rows untouched
	EnsureColumns(ctx context.Context, columns []domain.Column) error
}
