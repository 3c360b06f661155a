package main

import (
	"errors"
	"fmt"

	"github.com/Real-Streeter/liberty-command/internal/schema"
	"github.com/Real-Streeter/liberty-command/internal/seed"
	"github.com/Real-Streeter/liberty-command/pkg/database"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		password string
		force    bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all board data with the starter team, board and RFPs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction() && !force {
				return errors.New("refusing to seed a production database without --force")
			}
			if password == "" {
				password = cfg.DefaultMemberPassword
			}

			db, err := database.NewConnection(cfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := schema.Migrate(db); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			sum, err := seed.Run(cmd.Context(), db, password)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Printf("Seeded %d members, %d columns, %d tasks, %d RFPs.\n", sum.Members, sum.Columns, sum.Tasks, sum.Rfps)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password for every seeded member (default DEFAULT_MEMBER_PASSWORD)")
	cmd.Flags().BoolVar(&force, "force", false, "allow seeding when APP_ENV=production")
	return cmd
}
