package repository

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/rfp/domain"
)

// RfpRepository defines the interface for RFP data access
type RfpRepository interface {
	Create(ctx context.Context, rfp *domain.Rfp) error
	FindAll(ctx context.Context) ([]*domain.Rfp, error)
	FindByID(ctx context.Context, id string) (*domain.Rfp, error)
	Update(ctx context.Context, rfp *domain.Rfp) error
	Delete(ctx context.Context, id string) (bool, error)
}
