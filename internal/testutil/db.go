// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/schema"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
	"github.com/Real-Streeter/liberty-command/pkg/database"
)

// NewDB opens a private in-memory SQLite database with every table migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(database.MemoryDSN(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, schema.Migrate(db))
	return db
}

// SeedColumns inserts columns with the given ids in board order.
func SeedColumns(t testing.TB, db *gorm.DB, ids ...string) {
	t.Helper()
	for i, id := range ids {
		col := columndomain.Column{ID: id, Title: id, SortOrder: i}
		require.NoError(t, db.Create(&col).Error)
	}
}

// SeedTask inserts a task at an explicit position.
func SeedTask(t testing.TB, db *gorm.DB, id, columnID string, order int) {
	t.Helper()
	task := taskdomain.Task{ID: id, ColumnID: columnID, SortOrder: order, Content: id, Priority: taskdomain.PriorityStandard}
	require.NoError(t, db.Omit("Column").Create(&task).Error)
}

// Placement is a task's column and position.
type Placement struct {
	ColumnID  string
	SortOrder int
}

// Placements returns the placement of every task keyed by id.
func Placements(t testing.TB, db *gorm.DB) map[string]Placement {
	t.Helper()
	var tasks []taskdomain.Task
	require.NoError(t, db.WithContext(context.Background()).Find(&tasks).Error)
	out := make(map[string]Placement, len(tasks))
	for _, task := range tasks {
		out[task.ID] = Placement{ColumnID: task.ColumnID, SortOrder: task.SortOrder}
	}
	return out
}
