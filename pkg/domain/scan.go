package domain

import (
	"net"
	"strconv"
	"time"
)

// ScanTarget is a single host:port pair to scan.
type ScanTarget struct {
	// Host is an IP address, or a raw hostname when the domain did not resolve
	// and private-address blocking is off.
	Host string `json:"host"`
	Port int    `json:"port"`
	// IsResolved is false when Host is a hostname that could not be resolved.
	IsResolved bool `json:"isResolved"`
	// OriginalTarget is the IP range or domain the target was derived from.
	OriginalTarget string `json:"originalTarget"`
	// SNIHostname is sent as TLS server name. Empty for IP-only targets.
	SNIHostname string `json:"sniHostname,omitempty"`
}

// Address returns the target in host:port form.
func (t ScanTarget) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// FailureReason classifies why probing an endpoint did not yield certificates.
type FailureReason string

const (
	FailureConnectionFailed      FailureReason = "CONNECTION_FAILED"
	FailureCertificateParseError FailureReason = "CERTIFICATE_PARSE_ERROR"
)

// KeyUsage is an X.509 key usage name.
type KeyUsage string

const (
	KeyUsageDigitalSignature KeyUsage = "digitalSignature"
	KeyUsageNonRepudiation   KeyUsage = "nonRepudiation"
	KeyUsageKeyEncipherment  KeyUsage = "keyEncipherment"
	KeyUsageDataEncipherment KeyUsage = "dataEncipherment"
	KeyUsageKeyAgreement     KeyUsage = "keyAgreement"
	KeyUsageKeyCertSign      KeyUsage = "keyCertSign"
	KeyUsageCRLSign          KeyUsage = "cRLSign"
	KeyUsageEncipherOnly     KeyUsage = "encipherOnly"
	KeyUsageDecipherOnly     KeyUsage = "decipherOnly"
)

// ExtendedKeyUsage is an X.509 extended key usage name.
type ExtendedKeyUsage string

const (
	ExtendedKeyUsageServerAuth      ExtendedKeyUsage = "serverAuth"
	ExtendedKeyUsageClientAuth      ExtendedKeyUsage = "clientAuth"
	ExtendedKeyUsageCodeSigning     ExtendedKeyUsage = "codeSigning"
	ExtendedKeyUsageEmailProtection ExtendedKeyUsage = "emailProtection"
	ExtendedKeyUsageTimeStamping    ExtendedKeyUsage = "timeStamping"
	ExtendedKeyUsageOCSPSigning     ExtendedKeyUsage = "ocspSigning"
)

// SignatureAlgorithm is the normalized certificate signature algorithm.
type SignatureAlgorithm string

const (
	SignatureAlgorithmRSASHA256   SignatureAlgorithm = "RSA-SHA256"
	SignatureAlgorithmRSASHA384   SignatureAlgorithm = "RSA-SHA384"
	SignatureAlgorithmRSASHA512   SignatureAlgorithm = "RSA-SHA512"
	SignatureAlgorithmECDSASHA256 SignatureAlgorithm = "ECDSA-SHA256"
	SignatureAlgorithmECDSASHA384 SignatureAlgorithm = "ECDSA-SHA384"
	SignatureAlgorithmECDSASHA512 SignatureAlgorithm = "ECDSA-SHA512"
)

// ScanCertificateResult is the metadata extracted from a certificate observed
// on an endpoint. For the leaf, PEMChain holds the whole walked chain.
type ScanCertificateResult struct {
	// PEMChain is leaf first, deduplicated by fingerprint.
	PEMChain []string `json:"pemChain"`
	// Fingerprint is the uppercase hex SHA-256 over the DER encoding.
	Fingerprint     string `json:"fingerprint"`
	FingerprintSHA1 string `json:"fingerprintSha1"`

	CommonName string `json:"commonName"`
	// AltNames holds the SAN values joined with ", ", without type prefixes.
	AltNames string `json:"altNames"`

	SubjectOrganization     string `json:"subjectOrganization,omitempty"`
	SubjectOrganizationUnit string `json:"subjectOrganizationalUnit,omitempty"`
	SubjectCountry          string `json:"subjectCountry,omitempty"`
	SubjectState            string `json:"subjectState,omitempty"`
	SubjectLocality         string `json:"subjectLocality,omitempty"`

	IssuerCommonName   string `json:"issuerCommonName,omitempty"`
	IssuerOrganization string `json:"issuerOrganization,omitempty"`

	NotBefore    time.Time `json:"notBefore"`
	NotAfter     time.Time `json:"notAfter"`
	SerialNumber string    `json:"serialNumber"`

	// KeyAlgorithm is "RSA-<bits>" or "EC-<curve>", empty for other key types.
	KeyAlgorithm       string             `json:"keyAlgorithm,omitempty"`
	SignatureAlgorithm SignatureAlgorithm `json:"signatureAlgorithm,omitempty"`

	KeyUsages         []KeyUsage         `json:"keyUsages,omitempty"`
	ExtendedKeyUsages []ExtendedKeyUsage `json:"extendedKeyUsages,omitempty"`

	IsCA       *bool `json:"isCA,omitempty"`
	PathLength *int  `json:"pathLength,omitempty"`
}

// ScanEndpointResult is the outcome of probing a single endpoint.
type ScanEndpointResult struct {
	Success bool   `json:"success"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	// Certificates holds the leaf with its chain. Empty on failure.
	Certificates  []ScanCertificateResult `json:"certificates"`
	FailureReason FailureReason           `json:"failureReason,omitempty"`
	Error         string                  `json:"error,omitempty"`
	SNIHostname   string                  `json:"sniHostname,omitempty"`
}

// Address returns the scanned endpoint in host:port form.
func (r ScanEndpointResult) Address() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}
