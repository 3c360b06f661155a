package domain

import (
	"time"

	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
)

// Priority represents task priority level
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityStandard Priority = "Standard"
	PriorityLow      Priority = "Low"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityStandard, PriorityLow:
		return true
	}
	return false
}

// DueDateLayout is the calendar date format used for due dates
const DueDateLayout = "2006-01-02"

const (
	MaxContentLength  = 200
	MaxEstimateLength = 10
)

// Task is a card on the board. ColumnID and SortOrder place it; the rest is
// payload the ordering logic never looks at.
type Task struct {
	ID        string               `json:"id" gorm:"primaryKey"`
	ColumnID  string               `json:"columnId" gorm:"index:idx_tasks_column_order;not null"`
	Column    *columndomain.Column `json:"-" gorm:"foreignKey:ColumnID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SortOrder int                  `json:"sortOrder" gorm:"index:idx_tasks_column_order;not null;default:0"` // Zero-based rank within the column
	Content   string               `json:"content" gorm:"not null"`
	Owner     *string              `json:"owner"`
	Tag       *string              `json:"tag"`
	Priority  Priority             `json:"priority" gorm:"not null;default:'Standard'"`
	Estimate  *string              `json:"est"`
	DueDate   *string              `json:"dueDate"` // YYYY-MM-DD
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
