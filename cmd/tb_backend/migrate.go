package main

import (
	"fmt"

	"github.com/SscSPs/taxbooks_app/internal/platform/config"
	"github.com/SscSPs/taxbooks_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply (up) or roll back one step of (down) the PostgreSQL schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := newLogger(cfg)
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is required to run migrations")
			}

			direction := database.MigrateUp
			if len(args) == 1 {
				direction = database.MigrateDirection(args[0])
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsURL, direction, logger)
		},
	}
}
