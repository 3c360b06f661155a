package repository

import (
	"context"
	"time"

	"github.com/Real-Streeter/liberty-command/internal/auth/domain"
)

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error

	// FindActive returns the session with its member when it exists and has
	// not expired at now; nil otherwise
	FindActive(ctx context.Context, id string, now time.Time) (*domain.Session, error)

	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session that expired before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
