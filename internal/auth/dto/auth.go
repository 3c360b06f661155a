package dto

import (
	"time"

	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
)

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// MemberResponse is the public view of the logged in member
type MemberResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Role  teamdomain.Role `json:"role"`
}

// LoginResult is what a successful login hands to the transport layer
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Member    *teamdomain.Member
}

func NewMemberResponse(m *teamdomain.Member) MemberResponse {
	return MemberResponse{ID: m.ID, Name: m.Name, Color: m.Color, Role: m.Role}
}
