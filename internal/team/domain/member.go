package domain

import (
	"time"

	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

// Role decides what a member may change
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

const (
	DefaultColor   = "blue"
	MaxNameLength  = 50
	MaxColorLength = 30
)

// Member is a person on the team. Members are also the users who log in.
type Member struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Color        string    `json:"color" gorm:"not null;default:'blue'"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never return the hash in JSON
	Role         Role      `json:"role" gorm:"not null;default:'member'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

func (Member) TableName() string {
	return "team_members"
}

func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

var (
	ErrMemberNotFound = apperr.New(apperr.ErrNotFound, "Member not found")
	ErrDeleteSelf     = apperr.New(apperr.ErrValidation, "Cannot delete your own account")
)

// DuplicateNameError reports a second member with an existing name.
func DuplicateNameError(name string) error {
	return apperr.Newf(apperr.ErrConflict, "a member named %s already exists", name)
}
