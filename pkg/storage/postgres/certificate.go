package postgres

import (
	"context"
	"fmt"
	"pkidiscovery/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	certificatesTable      = "certificates"
	certificateBodiesTable = "certificate_bodies"
)

func (p *PgSQL) CertificateByFingerprint(ctx context.Context,
	projectID domain.ProjectID,
	fingerprint string) (*domain.Certificate, error) {
	var row PgCertificate
	found, err := p.Builder.From(certificatesTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("fingerprint_sha256").Eq(fingerprint),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch certificate from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreCertificate(ctx context.Context, cert domain.Certificate) (*domain.Certificate, error) {
	var row PgCertificate
	if err := row.FromDomain(cert); err != nil {
		return nil, err
	}

	var stored PgCertificate
	if _, err := p.Builder.Insert(certificatesTable).
		Rows(row).
		Returning(&PgCertificate{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store certificate into pg: %w", mapError(err))
	}

	return stored.ToDomain()
}

// StoreCertificateBody inserts the encrypted material as a prepared statement
// so the ciphertext is sent as a bytea parameter.
func (p *PgSQL) StoreCertificateBody(ctx context.Context, body domain.CertificateBody) error {
	if _, err := p.Builder.Insert(certificateBodiesTable).
		Prepared(true).
		Rows(PgCertificateBody{
			CertificateID:             uuid.UUID(body.CertificateID),
			EncryptedCertificate:      body.EncryptedCertificate,
			EncryptedCertificateChain: body.EncryptedCertificateChain,
		}).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store certificate body into pg: %w", mapError(err))
	}

	return nil
}
