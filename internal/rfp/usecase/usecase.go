package usecase

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	"github.com/Real-Streeter/liberty-command/internal/rfp/dto"
)

// RfpUsecase defines the interface for RFP tracking
type RfpUsecase interface {
	ListRfps(ctx context.Context) ([]*domain.Rfp, error)
	CreateRfp(ctx context.Context, req dto.CreateRfpRequest) (*domain.Rfp, error)
	UpdateRfp(ctx context.Context, id string, req dto.UpdateRfpRequest) (*domain.Rfp, error)
	DeleteRfp(ctx context.Context, id string) error
}
