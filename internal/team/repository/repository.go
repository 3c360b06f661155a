package repository

import (
	"context"

	"github.com/Real-Streeter/liberty-command/internal/team/domain"
)

// MemberRepository defines the interface for team member data access
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error

	// FindAll returns members in the order they joined
	FindAll(ctx context.Context) ([]*domain.Member, error)

	// FindByID and FindByName return nil when no member matches
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	FindByName(ctx context.Context, name string) (*domain.Member, error)

	Update(ctx context.Context, member *domain.Member) error

	// Delete removes the member together with their sessions.
	// Reports false when the member did not exist.
	Delete(ctx context.Context, id string) (bool, error)
}
