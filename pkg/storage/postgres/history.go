package postgres

import (
	"context"
	"fmt"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scanHistoryTable = "discovery_scan_history"
)

func (p *PgSQL) StoreScanHistory(ctx context.Context, history domain.ScanHistory) (*domain.ScanHistory, error) {
	var row PgScanHistory
	row.FromDomain(history)

	var stored PgScanHistory
	if _, err := p.Builder.Insert(scanHistoryTable).
		Rows(row).
		Returning(&PgScanHistory{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan history into pg: %w", mapError(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateScanHistory(ctx context.Context,
	id domain.ScanHistoryID,
	updates storage.ScanHistoryUpdates) error {
	rec := goqu.Record{}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.CompletedAt != nil {
		rec["completed_at"] = *updates.CompletedAt
	}
	if updates.TargetsScannedCount != nil {
		rec["targets_scanned_count"] = *updates.TargetsScannedCount
	}
	if updates.CertificatesFoundCount != nil {
		rec["certificates_found_count"] = *updates.CertificatesFoundCount
	}
	if updates.InstallationsFoundCount != nil {
		rec["installations_found_count"] = *updates.InstallationsFoundCount
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = *updates.ErrorMessage
	}
	if len(rec) == 0 {
		return nil
	}

	if _, err := p.Builder.Update(scanHistoryTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update scan history in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteScanHistory(ctx context.Context, id domain.ScanHistoryID) error {
	if _, err := p.Builder.Delete(scanHistoryTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete scan history in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ScanHistoryByDiscovery(ctx context.Context,
	id domain.DiscoveryID,
	limit uint) ([]domain.ScanHistory, error) {
	var rows []PgScanHistory
	if err := p.Builder.From(scanHistoryTable).
		Where(goqu.I("discovery_config_id").Eq(uuid.UUID(id))).
		Order(goqu.I("started_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan history from pg: %w", err)
	}

	out := make([]domain.ScanHistory, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
