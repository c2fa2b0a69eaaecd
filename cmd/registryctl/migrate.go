package main

import (
	"log/slog"
	"os"

	"registry/internal/infra/persistence/postgres"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const migrationURLEnv = "STORAGE_MIGRATIONURL"

func newMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the embedded PostgreSQL migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolveMigrationURL(databaseURL)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			migrator, err := postgres.NewMigrator(url, logger)
			if err != nil {
				return err
			}
			defer migrator.Close()

			if args[0] == "down" {
				return migrator.Down()
			}

			return migrator.Up()
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "pgx5:// URL, defaults to $"+migrationURLEnv)

	return cmd
}

func resolveMigrationURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	if url := os.Getenv(migrationURLEnv); url != "" {
		return url, nil
	}

	return "", errors.Errorf("--database-url or $%s is required", migrationURLEnv)
}
