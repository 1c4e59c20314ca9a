package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/users-server/database"
	"github.com/dtroode/users-server/internal/config"
	"github.com/dtroode/users-server/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			logger := logger.NewFile(cfg.LogLevel, logFileOptions(cfg))

			if err := database.Migrate(cmd.Context(), cfg.Database.URL); err != nil {
				logger.Error("migration failed", "error", err)
				return fmt.Errorf("failed to migrate: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}
