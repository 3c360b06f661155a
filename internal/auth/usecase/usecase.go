package usecase

import (
	"context"

	authdto "github.com/Real-Streeter/liberty-command/internal/auth/dto"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
)

// AuthUsecase defines the interface for session management
type AuthUsecase interface {
	// Login checks the credentials and opens a session
	Login(ctx context.Context, name, password string) (*authdto.LoginResult, error)

	// Logout closes the session named by token. Unknown or invalid tokens are ignored.
	Logout(ctx context.Context, token string) error

	// ValidateToken returns the member owning a live session
	ValidateToken(ctx context.Context, token string) (*teamdomain.Member, error)

	// PurgeExpiredSessions deletes sessions past their expiry
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// MemberFinder is the part of the member repository login depends on
type MemberFinder interface {
	FindByName(ctx context.Context, name string) (*teamdomain.Member, error)
}
