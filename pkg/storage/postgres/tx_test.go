package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/storage"
	"pkidiscovery/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testConfig(projectID domain.ProjectID, name string) domain.DiscoveryConfig {
	return domain.DiscoveryConfig{
		ProjectID:        projectID,
		Name:             name,
		TargetConfig:     domain.TargetConfig{IPRanges: []string{"192.0.2.10"}, Ports: "443"},
		IsActive:         true,
		ScanIntervalDays: 1,
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreDiscoveryConfigs(ctx, testConfig(domain.ProjectID(uuid.New()), "committed"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	got, err := pg.DiscoveryConfigByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "committed", got.Name)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreDiscoveryConfigs(ctx, testConfig(domain.ProjectID(uuid.New()), "discarded"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	got, err := pg.DiscoveryConfigByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())

	var committed domain.DiscoveryID
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		stored, err := s.StoreDiscoveryConfigs(ctx, testConfig(projectID, "kept"))
		if err != nil {
			return err
		}
		committed = stored[0].ID

		return nil
	})
	require.NoError(t, err)

	got, err := pg.DiscoveryConfigByID(ctx, committed)
	require.NoError(t, err)
	require.NotNil(t, got)

	var discarded domain.DiscoveryID
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		stored, err := s.StoreDiscoveryConfigs(ctx, testConfig(projectID, "dropped"))
		require.NoError(t, err)
		discarded = stored[0].ID

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	got, err = pg.DiscoveryConfigByID(ctx, discarded)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_PanicRollsBack(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var id domain.DiscoveryID
	require.PanicsWithValue(t, "boom", func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			stored, err := s.StoreDiscoveryConfigs(ctx, testConfig(domain.ProjectID(uuid.New()), "panicked"))
			require.NoError(t, err)
			id = stored[0].ID

			panic("boom")
		})
	})

	got, err := pg.DiscoveryConfigByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Ping(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.Ping(context.Background()))
}
