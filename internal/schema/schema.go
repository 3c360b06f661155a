// Package schema owns the list of persisted models and their migration.
package schema

import (
	"fmt"

	authdomain "github.com/Real-Streeter/liberty-command/internal/auth/domain"
	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	rfpdomain "github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&teamdomain.Member{},
		&authdomain.Session{},
		&columndomain.Column{},
		&taskdomain.Task{},
		&rfpdomain.Rfp{},
	}
}

// Migrate auto-migrates every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
