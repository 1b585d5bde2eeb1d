package domain

import (
	"time"

	"github.com/google/uuid"
)

// CertificateID uniquely identifies a stored certificate.
type CertificateID uuid.UUID

func (id CertificateID) String() string { return uuid.UUID(id).String() }

type CertificateStatus string

const (
	CertificateStatusActive CertificateStatus = "active"
)

// CertificateSource tells how a certificate entered the inventory.
type CertificateSource string

const (
	CertificateSourceDiscovered CertificateSource = "discovered"
)

// Certificate is a certificate in the project inventory. There is at most one
// row per (ProjectID, FingerprintSHA256).
type Certificate struct {
	ID        CertificateID     `json:"id"`
	ProjectID ProjectID         `json:"projectId"`
	Status    CertificateStatus `json:"status"`
	Source    CertificateSource `json:"source"`

	FriendlyName string `json:"friendlyName"`
	CommonName   string `json:"commonName"`
	AltNames     string `json:"altNames"`
	SerialNumber string `json:"serialNumber"`

	NotBefore time.Time `json:"notBefore"`
	NotAfter  time.Time `json:"notAfter"`

	FingerprintSHA256 string `json:"fingerprintSha256"`
	FingerprintSHA1   string `json:"fingerprintSha1,omitempty"`

	SubjectOrganization     string `json:"subjectOrganization,omitempty"`
	SubjectOrganizationUnit string `json:"subjectOrganizationalUnit,omitempty"`
	SubjectCountry          string `json:"subjectCountry,omitempty"`
	SubjectState            string `json:"subjectState,omitempty"`
	SubjectLocality         string `json:"subjectLocality,omitempty"`

	KeyAlgorithm       string             `json:"keyAlgorithm,omitempty"`
	SignatureAlgorithm SignatureAlgorithm `json:"signatureAlgorithm,omitempty"`
	KeyUsages          []KeyUsage         `json:"keyUsages,omitempty"`
	ExtendedKeyUsages  []ExtendedKeyUsage `json:"extendedKeyUsages,omitempty"`
	IsCA               *bool              `json:"isCA,omitempty"`
	PathLength         *int               `json:"pathLength,omitempty"`

	// DiscoveryMetadata records where and when the certificate was first found.
	DiscoveryMetadata DiscoveryMetadata `json:"discoveryMetadata"`

	CreatedAt time.Time `json:"createdAt"`
}

// DiscoveryMetadata is stored alongside certificates created by a scan.
type DiscoveryMetadata struct {
	DiscoveredBy       DiscoveryID `json:"discoveredBy"`
	Host               string      `json:"host"`
	Port               int         `json:"port"`
	SNIHostname        string      `json:"sniHostname,omitempty"`
	DiscoveredAt       time.Time   `json:"discoveredAt"`
	IssuerCommonName   string      `json:"issuerCommonName,omitempty"`
	IssuerOrganization string      `json:"issuerOrganization,omitempty"`
}

// CertificateBody holds the KMS-encrypted PEM material of a certificate.
type CertificateBody struct {
	CertificateID             CertificateID `json:"certificateId"`
	EncryptedCertificate      []byte        `json:"-"`
	EncryptedCertificateChain []byte        `json:"-"`
}
