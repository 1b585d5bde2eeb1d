package storage

import (
	"context"
	"pkidiscovery/pkg/domain"
)

// CertificateStorage persists the certificate inventory.
type CertificateStorage interface {
	// CertificateByFingerprint returns nil when the project has no certificate
	// with the given SHA-256 fingerprint.
	CertificateByFingerprint(ctx context.Context,
		projectID domain.ProjectID,
		fingerprint string) (*domain.Certificate, error)
	// StoreCertificate inserts a certificate. It returns ErrUniqueViolation
	// when the project already has the fingerprint.
	StoreCertificate(ctx context.Context, cert domain.Certificate) (*domain.Certificate, error)
	// StoreCertificateBody inserts the encrypted material of a certificate.
	StoreCertificateBody(ctx context.Context, body domain.CertificateBody) error
}
