package domain

import (
	"time"

	"github.com/google/uuid"
)

// InstallationID uniquely identifies an installation.
type InstallationID uuid.UUID

func (id InstallationID) String() string { return uuid.UUID(id).String() }

// LocationType is the kind of place an installation lives at.
type LocationType string

const (
	LocationTypeNetwork LocationType = "network"
)

// InstallationType classifies the software serving the certificate.
type InstallationType string

const (
	InstallationTypeUnknown InstallationType = "unknown"
)

// LocationDetails describes where certificates were observed. Empty fields
// are omitted from the stored JSON and from the location fingerprint.
type LocationDetails struct {
	IPAddress   string `json:"ipAddress,omitempty"`
	FQDN        string `json:"fqdn,omitempty"`
	Port        int    `json:"port,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	GatewayName string `json:"gatewayName,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
}

// Installation is a location where certificates were observed. There is at
// most one row per (ProjectID, LocationFingerprint).
type Installation struct {
	ID                  InstallationID   `json:"id"`
	ProjectID           ProjectID        `json:"projectId"`
	LocationType        LocationType     `json:"locationType"`
	LocationDetails     LocationDetails  `json:"locationDetails"`
	LocationFingerprint string           `json:"locationFingerprint"`
	Name                string           `json:"name"`
	Type                InstallationType `json:"type"`
	LastSeenAt          time.Time        `json:"lastSeenAt"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// InstallationCertificate links a certificate to an installation. Links whose
// certificate was not observed by the latest scan of the installation have
// IsCurrentlyPresent set to false.
type InstallationCertificate struct {
	InstallationID     InstallationID `json:"installationId"`
	CertificateID      CertificateID  `json:"certificateId"`
	FirstSeenAt        time.Time      `json:"firstSeenAt"`
	LastSeenAt         time.Time      `json:"lastSeenAt"`
	IsCurrentlyPresent bool           `json:"isCurrentlyPresent"`
}
