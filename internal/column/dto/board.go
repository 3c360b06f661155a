package dto

import (
	"time"

	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
)

// TaskCard is a task as it appears inside a board column
type TaskCard struct {
	ID        string              `json:"id"`
	Content   string              `json:"content"`
	Owner     *string             `json:"owner"`
	Tag       *string             `json:"tag"`
	Priority  taskdomain.Priority `json:"priority"`
	Estimate  *string             `json:"est"`
	CreatedAt time.Time           `json:"createdAt"`
	DueDate   *string             `json:"dueDate"`
}

// BoardColumn is a column with its tasks in position order
type BoardColumn struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Icon  string     `json:"icon"`
	Color string     `json:"color"`
	Tasks []TaskCard `json:"tasks"`
}

func NewTaskCard(t *taskdomain.Task) TaskCard {
	return TaskCard{
		ID:        t.ID,
		Content:   t.Content,
		Owner:     t.Owner,
		Tag:       t.Tag,
		Priority:  t.Priority,
		Estimate:  t.Estimate,
		CreatedAt: t.CreatedAt,
		DueDate:   t.DueDate,
	}
}

func NewBoardColumn(c *columndomain.Column) BoardColumn {
	return BoardColumn{
		ID:    c.ID,
		Title: c.Title,
		Icon:  c.Icon,
		Color: c.Color,
		Tasks: []TaskCard{},
	}
}
