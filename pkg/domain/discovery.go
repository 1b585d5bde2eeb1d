package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiscoveryID uniquely identifies a discovery configuration.
type DiscoveryID uuid.UUID

func (id DiscoveryID) String() string { return uuid.UUID(id).String() }

// ScanHistoryID uniquely identifies a single scan run of a discovery.
type ScanHistoryID uuid.UUID

func (id ScanHistoryID) String() string { return uuid.UUID(id).String() }

// ScanStatus represents the lifecycle state of a discovery scan.
type ScanStatus string

const (
	// ScanStatusPending indicates the project scan slot was claimed and a job is queued.
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusRunning indicates a worker is executing the scan.
	ScanStatusRunning ScanStatus = "RUNNING"
	// ScanStatusCompleted indicates the scan finished and its results were persisted.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates the scan was aborted, see the scan message.
	ScanStatusFailed ScanStatus = "FAILED"
	// ScanStatusCancelled indicates the scan was cancelled before completion.
	ScanStatusCancelled ScanStatus = "CANCELLED"
)

// IsActive reports whether the status holds the project scan slot.
func (s ScanStatus) IsActive() bool {
	return s == ScanStatusPending || s == ScanStatusRunning
}

// DiscoveryType is the kind of discovery. Only network discovery exists today.
type DiscoveryType string

const (
	DiscoveryTypeNetwork DiscoveryType = "network"
)

// TargetConfig is the user-supplied scope of a discovery.
type TargetConfig struct {
	// IPRanges holds either a single CIDR block or a list of individual IPs.
	IPRanges []string `json:"ipRanges,omitempty"`
	// Domains holds fully qualified domain names, wildcards are not allowed.
	Domains []string `json:"domains,omitempty"`
	// Ports is a comma separated list of ports and inclusive ranges, e.g. "443, 8000-8010".
	Ports string `json:"ports"`
}

// DiscoveryConfig is a named, persisted discovery scope with its scheduling
// settings and the summary of its last scan.
type DiscoveryConfig struct {
	ID          DiscoveryID   `json:"id"`
	ProjectID   ProjectID     `json:"projectId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Type        DiscoveryType `json:"discoveryType"`

	TargetConfig TargetConfig `json:"targetConfig"`
	// GatewayID is set when scans must be tunneled through a gateway.
	GatewayID *GatewayID `json:"gatewayId,omitempty"`

	IsActive          bool `json:"isActive"`
	IsAutoScanEnabled bool `json:"isAutoScanEnabled"`
	// ScanIntervalDays is the number of days between automatic scans (1 to 365).
	ScanIntervalDays int `json:"scanIntervalDays"`

	LastScannedAt   time.Time      `json:"lastScannedAt,omitzero"`
	LastScanStatus  ScanStatus     `json:"lastScanStatus,omitempty"`
	LastScanJobID   *ScanHistoryID `json:"lastScanJobId,omitempty"`
	LastScanMessage string         `json:"lastScanMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasGateway reports whether scans of this discovery go through a gateway.
func (d DiscoveryConfig) HasGateway() bool {
	return d.GatewayID != nil
}

// ScanHistory records a single execution of a discovery.
type ScanHistory struct {
	ID                ScanHistoryID `json:"id"`
	DiscoveryConfigID DiscoveryID   `json:"discoveryConfigId"`

	Status      ScanStatus `json:"status"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt time.Time  `json:"completedAt,omitzero"`

	TargetsScannedCount     int `json:"targetsScannedCount"`
	CertificatesFoundCount  int `json:"certificatesFoundCount"`
	InstallationsFoundCount int `json:"installationsFoundCount"`

	ErrorMessage string `json:"errorMessage,omitempty"`
}
