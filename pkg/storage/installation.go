package storage

import (
	"context"
	"pkidiscovery/pkg/domain"
	"time"
)

// InstallationStorage persists installations and their links to discoveries
// and certificates.
type InstallationStorage interface {
	// InstallationByFingerprint returns nil when the project has no
	// installation with the given location fingerprint.
	InstallationByFingerprint(ctx context.Context,
		projectID domain.ProjectID,
		fingerprint string) (*domain.Installation, error)
	// UpsertInstallation inserts an installation, or refreshes last_seen_at of
	// the existing one with the same location fingerprint, and returns it.
	UpsertInstallation(ctx context.Context, installation domain.Installation) (*domain.Installation, error)
	// UpsertDiscoveryInstallation links an installation to the discovery that
	// found it. It reports false when either side no longer exists.
	UpsertDiscoveryInstallation(ctx context.Context,
		discoveryID domain.DiscoveryID,
		installationID domain.InstallationID,
		seenAt time.Time) (bool, error)
	// UpsertInstallationCertificate records that a certificate is currently
	// served by an installation.
	UpsertInstallationCertificate(ctx context.Context,
		installationID domain.InstallationID,
		certificateID domain.CertificateID,
		seenAt time.Time) error
	// MarkAbsentInstallationCertificates clears is_currently_present on every
	// link of the installation whose certificate is not in present, returning
	// the number of links changed.
	MarkAbsentInstallationCertificates(ctx context.Context,
		installationID domain.InstallationID,
		present []domain.CertificateID) (int64, error)
	// InstallationCertificates returns the certificate links of an installation.
	InstallationCertificates(ctx context.Context,
		installationID domain.InstallationID) ([]domain.InstallationCertificate, error)
}
