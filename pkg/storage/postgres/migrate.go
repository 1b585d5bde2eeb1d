package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"pkidiscovery/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// Migrate applies the goose migrations found under dir of fsys, then brings the
// River queue schema to its latest version.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	migrations, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("could not open migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	return migrateRiver(ctx, db)
}

func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	}); err != nil {
		return fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return nil
}
