package domain

import (
	"time"

	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

// CookieName is the cookie carrying the signed session token
const CookieName = "session_id"

// Session is a server-side login. The cookie holds a signed token naming
// the session; deleting the row revokes the cookie.
type Session struct {
	ID        string             `gorm:"primaryKey"`
	MemberID  string             `gorm:"index;not null"`
	Member    *teamdomain.Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time          `gorm:"index;not null"`
	CreatedAt time.Time
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

var (
	ErrMissingCredentials = apperr.New(apperr.ErrValidation, "Name and password are required")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "Invalid credentials")
	ErrNotAuthenticated   = apperr.New(apperr.ErrUnauthorized, "Not authenticated")
	ErrSessionExpired     = apperr.New(apperr.ErrUnauthorized, "Session expired")
	ErrAdminRequired      = apperr.New(apperr.ErrForbidden, "Admin access required")
)
