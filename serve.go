package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	api "github.com/Real-Streeter/liberty-command/cmd/api"
	"github.com/Real-Streeter/liberty-command/internal/schema"
	"github.com/Real-Streeter/liberty-command/pkg/database"
	"github.com/Real-Streeter/liberty-command/pkg/logger"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.Component("main")

			// Initialize database
			db, err := database.NewConnection(cfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			// Auto-migrate database schemas
			if err := schema.Migrate(db); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := api.NewApp(cfg, db)
			defer app.Close()

			if err := app.Board.EnsureDefaultColumns(ctx); err != nil {
				return fmt.Errorf("ensure default columns: %w", err)
			}

			app.Sweeper.Start()
			defer app.Sweeper.Stop()

			log.WithField("env", cfg.Environment).WithField("driver", cfg.DatabaseDriver).Info("starting")
			return app.Handler.Start(ctx, ":"+cfg.Port)
		},
	}

	cmd.Flags().String("port", "3001", "listen port")
	_ = v.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	return cmd
}
