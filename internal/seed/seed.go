// Package seed resets the database to the starting board.
package seed

import (
	"context"
	"fmt"
	"time"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	rfpdomain "github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
	teamrepo "github.com/Real-Streeter/liberty-command/internal/team/repository"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"gorm.io/gorm"
)

var log = logger.Component("Seed")

// Summary counts the rows written by Run
type Summary struct {
	Members int
	Columns int
	Tasks   int
	Rfps    int
}

// Run wipes sessions, tasks, RFPs, columns and members, then writes the
// starting data. Every member gets password. It all happens in one
// transaction.
func Run(ctx context.Context, db *gorm.DB, password string) (Summary, error) {
	hash, err := teamrepo.HashPassword(password)
	if err != nil {
		return Summary{}, fmt.Errorf("hash password: %w", err)
	}

	var sum Summary
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// children first so foreign keys hold
		for _, model := range []interface{}{
			&authdomain.Session{},
			&taskdomain.Task{},
			&rfpdomain.Rfp{},
			&columndomain.Column{},
			&teamdomain.Member{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		// spaced creation times keep list order stable
		base := time.Now().UTC()
		at := func(i int) time.Time { return base.Add(time.Duration(i) * time.Millisecond) }

		for i, m := range members {
			row := teamdomain.Member{
				ID:           m.ID,
				Name:         m.Name,
				Color:        m.Color,
				PasswordHash: hash,
				Role:         m.Role,
				CreatedAt:    at(i),
				UpdatedAt:    at(i),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("member %s: %w", m.ID, err)
			}
		}
		sum.Members = len(members)

		columns := columndomain.DefaultColumns()
		for i := range columns {
			columns[i].CreatedAt = base
			columns[i].UpdatedAt = base
		}
		if err := tx.Create(&columns).Error; err != nil {
			return fmt.Errorf("columns: %w", err)
		}
		sum.Columns = len(columns)

		for i, t := range tasks {
			row := taskdomain.Task{
				ID:        t.ID,
				ColumnID:  t.ColumnID,
				SortOrder: t.SortOrder,
				Content:   t.Content,
				Owner:     strPtr(t.Owner),
				Tag:       strPtr(t.Tag),
				Priority:  t.Priority,
				Estimate:  strPtr(t.Estimate),
				DueDate:   strPtr(t.DueDate),
				CreatedAt: at(i),
				UpdatedAt: at(i),
			}
			if err := tx.Omit("Column").Create(&row).Error; err != nil {
				return fmt.Errorf("task %s: %w", t.ID, err)
			}
		}
		sum.Tasks = len(tasks)

		for i, r := range rfps {
			row := r
			row.CreatedAt = at(i)
			row.UpdatedAt = at(i)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("rfp %s: %w", r.ID, err)
			}
		}
		sum.Rfps = len(rfps)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.WithField("members", sum.Members).
		WithField("columns", sum.Columns).
		WithField("tasks", sum.Tasks).
		WithField("rfps", sum.Rfps).
		Info("database seeded")
	return sum, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
