package postgres

import (
	"context"
	"errors"
	"fmt"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	discoveryConfigsTable = "discovery_configs"
)

var activeScanStatuses = []string{
	string(domain.ScanStatusPending),
	string(domain.ScanStatusRunning),
}

func (p *PgSQL) StoreDiscoveryConfigs(ctx context.Context,
	configs ...domain.DiscoveryConfig) ([]domain.DiscoveryConfig, error) {
	if len(configs) == 0 {
		return nil, nil
	}

	rows := make([]PgDiscoveryConfig, len(configs))
	for i := range configs {
		if err := rows[i].FromDomain(configs[i]); err != nil {
			return nil, err
		}
	}

	var result []PgDiscoveryConfig
	if err := p.Builder.Insert(discoveryConfigsTable).
		Rows(rows).
		Returning(&PgDiscoveryConfig{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store discovery configs into pg: %w", mapError(err))
	}

	return pgDiscoveryConfigsToDomain(result)
}

func (p *PgSQL) DiscoveryConfigByID(ctx context.Context, id domain.DiscoveryID) (*domain.DiscoveryConfig, error) {
	var row PgDiscoveryConfig
	found, err := p.Builder.From(discoveryConfigsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch discovery config from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateDiscoveryConfig sets the provided scan summary fields and bumps updated_at.
func (p *PgSQL) UpdateDiscoveryConfig(ctx context.Context,
	id domain.DiscoveryID,
	updates storage.DiscoveryConfigUpdates) (*domain.DiscoveryConfig, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.LastScanStatus != "" {
		rec["last_scan_status"] = string(updates.LastScanStatus)
	}
	if updates.LastScanJobID != nil {
		rec["last_scan_job_id"] = uuid.UUID(*updates.LastScanJobID)
	}
	if updates.LastScannedAt != nil {
		rec["last_scanned_at"] = *updates.LastScannedAt
	}
	if updates.LastScanMessage != nil {
		if *updates.LastScanMessage == "" {
			rec["last_scan_message"] = goqu.L("NULL")
		} else {
			rec["last_scan_message"] = *updates.LastScanMessage
		}
	}

	var row PgDiscoveryConfig
	found, err := p.Builder.Update(discoveryConfigsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgDiscoveryConfig{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update discovery config in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteDiscoveryConfig(ctx context.Context, id domain.DiscoveryID) (*domain.DiscoveryConfig, error) {
	var row PgDiscoveryConfig
	found, err := p.Builder.Delete(discoveryConfigsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgDiscoveryConfig{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete discovery config in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ClaimScanSlot moves the discovery to PENDING when neither it nor any other
// discovery of its project is PENDING or RUNNING. The NOT EXISTS guard covers
// the common case, the partial unique index on project_id settles races
// between concurrent claims.
func (p *PgSQL) ClaimScanSlot(ctx context.Context, id domain.DiscoveryID) (bool, error) {
	res, err := p.Builder.Update(discoveryConfigsTable).
		Set(goqu.Record{
			"last_scan_status": string(domain.ScanStatusPending),
			"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("is_active").IsTrue(),
			goqu.Or(
				goqu.I("last_scan_status").IsNull(),
				goqu.I("last_scan_status").NotIn(activeScanStatuses),
			),
			goqu.L(`NOT EXISTS (
				SELECT 1 FROM discovery_configs other
				WHERE other.project_id = discovery_configs.project_id
				AND other.id <> discovery_configs.id
				AND other.last_scan_status IN ?)`, activeScanStatuses),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		err = mapError(err)
		if errors.Is(err, storage.ErrUniqueViolation) {
			return false, nil
		}

		return false, fmt.Errorf("could not claim scan slot in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get claimed rows: %w", err)
	}

	return affected == 1, nil
}

func (p *PgSQL) DueDiscoveryConfigs(ctx context.Context, now time.Time, limit uint) ([]domain.DiscoveryConfig, error) {
	var rows []PgDiscoveryConfig
	if err := p.Builder.From(discoveryConfigsTable).
		Where(
			goqu.I("is_active").IsTrue(),
			goqu.I("is_auto_scan_enabled").IsTrue(),
			goqu.Or(
				goqu.I("last_scan_status").IsNull(),
				goqu.I("last_scan_status").NotIn(activeScanStatuses),
			),
			goqu.Or(
				goqu.I("last_scanned_at").IsNull(),
				goqu.L("last_scanned_at + make_interval(days => scan_interval_days) <= ?", now),
			),
		).
		Order(goqu.I("last_scanned_at").Asc().NullsFirst(), goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch due discovery configs from pg: %w", err)
	}

	return pgDiscoveryConfigsToDomain(rows)
}
