package postgres_test

import (
	"context"
	"fmt"
	root "pkidiscovery"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// schema and river tables
	require.NoError(t, pgSQL.Migrate(ctx, root.Migrations, "migrations"))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func newDiscovery(t *testing.T, pg *postgres.PgSQL, projectID domain.ProjectID, name string) domain.DiscoveryConfig {
	t.Helper()

	stored, err := pg.StoreDiscoveryConfigs(t.Context(), domain.DiscoveryConfig{
		ProjectID: projectID,
		Name:      name,
		TargetConfig: domain.TargetConfig{
			Domains: []string{"example.com"},
			Ports:   "443",
		},
		IsActive:         true,
		ScanIntervalDays: 7,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0]
}
