package main

import (
	"context"
	root "pkidiscovery"
	"pkidiscovery/internal/config"
	"pkidiscovery/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the goose
// migrations and the River queue schema to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database migrated")
		},
	}

	return cmd
}
