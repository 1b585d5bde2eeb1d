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
	installationsTable            = "installations"
	discoveryInstallationsTable   = "discovery_installations"
	installationCertificatesTable = "installation_certificates"
)

func (p *PgSQL) InstallationByFingerprint(ctx context.Context,
	projectID domain.ProjectID,
	fingerprint string) (*domain.Installation, error) {
	var row PgInstallation
	found, err := p.Builder.From(installationsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("location_fingerprint").Eq(fingerprint),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch installation from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpsertInstallation inserts the installation or, when the project already has
// its location fingerprint, only advances last_seen_at.
func (p *PgSQL) UpsertInstallation(ctx context.Context,
	installation domain.Installation) (*domain.Installation, error) {
	var row PgInstallation
	if err := row.FromDomain(installation); err != nil {
		return nil, err
	}

	var stored PgInstallation
	if _, err := p.Builder.Insert(installationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("project_id, location_fingerprint", goqu.Record{
			"last_seen_at": goqu.L("GREATEST(installations.last_seen_at, EXCLUDED.last_seen_at)"),
		})).
		Returning(&PgInstallation{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not upsert installation into pg: %w", mapError(err))
	}

	return stored.ToDomain()
}

// UpsertDiscoveryInstallation inserts the link only while both sides exist,
// reporting false otherwise. A side deleted by a concurrent transaction is
// reported the same way.
func (p *PgSQL) UpsertDiscoveryInstallation(ctx context.Context,
	discoveryID domain.DiscoveryID,
	installationID domain.InstallationID,
	seenAt time.Time) (bool, error) {
	res, err := p.DB.ExecContext(ctx, `
		INSERT INTO discovery_installations (discovery_id, installation_id, first_seen_at, last_seen_at)
		SELECT $1::uuid, $2::uuid, $3::timestamptz, $3::timestamptz
		WHERE EXISTS (SELECT 1 FROM discovery_configs WHERE id = $1::uuid)
		AND EXISTS (SELECT 1 FROM installations WHERE id = $2::uuid)
		ON CONFLICT (discovery_id, installation_id) DO UPDATE SET last_seen_at = EXCLUDED.last_seen_at`,
		uuid.UUID(discoveryID), uuid.UUID(installationID), seenAt)
	if err != nil {
		err = mapError(err)
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return false, nil
		}

		return false, fmt.Errorf("could not upsert discovery installation into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get upserted rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) UpsertInstallationCertificate(ctx context.Context,
	installationID domain.InstallationID,
	certificateID domain.CertificateID,
	seenAt time.Time) error {
	if _, err := p.Builder.Insert(installationCertificatesTable).
		Rows(PgInstallationCertificate{
			InstallationID:     uuid.UUID(installationID),
			CertificateID:      uuid.UUID(certificateID),
			FirstSeenAt:        seenAt,
			LastSeenAt:         seenAt,
			IsCurrentlyPresent: true,
		}).
		OnConflict(goqu.DoUpdate("installation_id, certificate_id", goqu.Record{
			"last_seen_at":         goqu.L("EXCLUDED.last_seen_at"),
			"is_currently_present": true,
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert installation certificate into pg: %w", mapError(err))
	}

	return nil
}

func (p *PgSQL) MarkAbsentInstallationCertificates(ctx context.Context,
	installationID domain.InstallationID,
	present []domain.CertificateID) (int64, error) {
	where := []goqu.Expression{
		goqu.I("installation_id").Eq(uuid.UUID(installationID)),
		goqu.I("is_currently_present").IsTrue(),
	}
	if len(present) > 0 {
		ids := make([]string, len(present))
		for i, id := range present {
			ids[i] = id.String()
		}
		where = append(where, goqu.I("certificate_id").NotIn(ids))
	}

	res, err := p.Builder.Update(installationCertificatesTable).
		Set(goqu.Record{"is_currently_present": false}).
		Where(where...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark absent installation certificates in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get marked rows: %w", err)
	}

	return affected, nil
}

func (p *PgSQL) InstallationCertificates(ctx context.Context,
	installationID domain.InstallationID) ([]domain.InstallationCertificate, error) {
	var rows []PgInstallationCertificate
	if err := p.Builder.From(installationCertificatesTable).
		Where(goqu.I("installation_id").Eq(uuid.UUID(installationID))).
		Order(goqu.I("first_seen_at").Asc(), goqu.I("certificate_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch installation certificates from pg: %w", err)
	}

	out := make([]domain.InstallationCertificate, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
