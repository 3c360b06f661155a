package usecase

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/team/domain"
	"github.com/Real-Streeter/liberty-command/internal/team/dto"
)

// TeamUsecase defines the interface for roster management
type TeamUsecase interface {
	ListMembers(ctx context.Context) ([]*domain.Member, error)
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, id string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member on behalf of actorID, who may not remove themselves
	DeleteMember(ctx context.Context, actorID, id string) error
}
