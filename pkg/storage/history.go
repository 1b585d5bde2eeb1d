package storage

import (
	"context"
	"pkidiscovery/pkg/domain"
	"time"
)

// ScanHistoryUpdates lists the fields of a scan run that can be changed.
// Zero or nil fields are left untouched.
type ScanHistoryUpdates struct {
	Status                  domain.ScanStatus
	CompletedAt             *time.Time
	TargetsScannedCount     *int
	CertificatesFoundCount  *int
	InstallationsFoundCount *int
	ErrorMessage            *string
}

// ScanHistoryStorage persists scan runs.
type ScanHistoryStorage interface {
	StoreScanHistory(ctx context.Context, history domain.ScanHistory) (*domain.ScanHistory, error)
	UpdateScanHistory(ctx context.Context, id domain.ScanHistoryID, updates ScanHistoryUpdates) error
	DeleteScanHistory(ctx context.Context, id domain.ScanHistoryID) error
	// ScanHistoryByDiscovery returns the latest runs of a discovery, newest first.
	ScanHistoryByDiscovery(ctx context.Context, id domain.DiscoveryID, limit uint) ([]domain.ScanHistory, error)
}
