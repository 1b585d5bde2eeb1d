package storage

import (
	"context"
	"pkidiscovery/pkg/domain"
	"time"
)

// DiscoveryConfigUpdates lists the scan summary fields of a discovery that
// can be changed. Zero or nil fields are left untouched.
type DiscoveryConfigUpdates struct {
	LastScanStatus  domain.ScanStatus
	LastScanJobID   *domain.ScanHistoryID
	LastScannedAt   *time.Time
	LastScanMessage *string
}

// DiscoveryStorage persists discovery configurations and arbitrates the
// per-project scan slot.
type DiscoveryStorage interface {
	// StoreDiscoveryConfigs inserts discoveries and returns the stored rows.
	StoreDiscoveryConfigs(ctx context.Context, configs ...domain.DiscoveryConfig) ([]domain.DiscoveryConfig, error)
	// DiscoveryConfigByID returns nil when the discovery does not exist.
	DiscoveryConfigByID(ctx context.Context, id domain.DiscoveryID) (*domain.DiscoveryConfig, error)
	// UpdateDiscoveryConfig applies updates and returns the updated row, or
	// nil when the discovery does not exist. Setting an active status while
	// another discovery of the project holds the scan slot returns
	// ErrUniqueViolation.
	UpdateDiscoveryConfig(ctx context.Context,
		id domain.DiscoveryID,
		updates DiscoveryConfigUpdates) (*domain.DiscoveryConfig, error)
	// DeleteDiscoveryConfig deletes a discovery with its scan history and
	// installation links, returning nil when it did not exist.
	DeleteDiscoveryConfig(ctx context.Context, id domain.DiscoveryID) (*domain.DiscoveryConfig, error)
	// ClaimScanSlot atomically moves an active discovery to PENDING if no
	// discovery of its project is PENDING or RUNNING. It reports whether the
	// slot was claimed. Concurrent claims within a project never both succeed.
	ClaimScanSlot(ctx context.Context, id domain.DiscoveryID) (bool, error)
	// DueDiscoveryConfigs returns active auto-scan discoveries whose interval
	// elapsed at now and that do not hold the scan slot, oldest scan first.
	DueDiscoveryConfigs(ctx context.Context, now time.Time, limit uint) ([]domain.DiscoveryConfig, error)
}
