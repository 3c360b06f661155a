package domain

import (
	"time"

	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

const (
	StatusRequestSent  = "Request Sent"
	StatusRatesPending = "Rates Pending"
	StatusFinalizing   = "Finalizing"

	MaxNameLength    = 100
	MaxCarrierLength = 100
	MaxStatusLength  = 50
	MaxNotesLength   = 500
	MaxProgress      = 100
)

// Rfp tracks a request for pricing sent to a carrier
type Rfp struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Carrier   string    `json:"carrier" gorm:"not null"`
	Progress  int       `json:"progress" gorm:"not null;default:0"` // Percent complete, 0..100
	Status    string    `json:"status" gorm:"not null;default:'Request Sent'"`
	DueDate   *string   `json:"dueDate"` // YYYY-MM-DD
	Notes     string    `json:"notes" gorm:"not null;default:''"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Rfp) TableName() string {
	return "rfps"
}

var ErrRfpNotFound = apperr.New(apperr.ErrNotFound, "RFP not found")
