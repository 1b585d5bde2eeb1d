package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"pkidiscovery/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgDiscoveryConfig struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	DiscoveryType string          `db:"discovery_type"`
	TargetConfig  json.RawMessage `db:"target_config"`
	GatewayID     uuid.NullUUID   `db:"gateway_id"`

	IsActive          bool `db:"is_active"`
	IsAutoScanEnabled bool `db:"is_auto_scan_enabled"`
	ScanIntervalDays  int  `db:"scan_interval_days"`

	LastScannedAt   sql.NullTime   `db:"last_scanned_at"   goqu:"skipinsert"`
	LastScanStatus  sql.NullString `db:"last_scan_status"  goqu:"skipinsert"`
	LastScanJobID   uuid.NullUUID  `db:"last_scan_job_id"  goqu:"skipinsert"`
	LastScanMessage sql.NullString `db:"last_scan_message" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDiscoveryConfig) ToDomain() (*domain.DiscoveryConfig, error) {
	var target domain.TargetConfig
	if err := json.Unmarshal(p.TargetConfig, &target); err != nil {
		return nil, fmt.Errorf("could not unmarshal target config: %w", err)
	}

	config := &domain.DiscoveryConfig{
		ID:                domain.DiscoveryID(p.ID),
		ProjectID:         domain.ProjectID(p.ProjectID),
		Name:              p.Name,
		Description:       p.Description.String,
		Type:              domain.DiscoveryType(p.DiscoveryType),
		TargetConfig:      target,
		IsActive:          p.IsActive,
		IsAutoScanEnabled: p.IsAutoScanEnabled,
		ScanIntervalDays:  p.ScanIntervalDays,
		LastScannedAt:     p.LastScannedAt.Time,
		LastScanStatus:    domain.ScanStatus(p.LastScanStatus.String),
		LastScanMessage:   p.LastScanMessage.String,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.GatewayID.Valid {
		gatewayID := domain.GatewayID(p.GatewayID.UUID)
		config.GatewayID = &gatewayID
	}
	if p.LastScanJobID.Valid {
		jobID := domain.ScanHistoryID(p.LastScanJobID.UUID)
		config.LastScanJobID = &jobID
	}

	return config, nil
}

func (p *PgDiscoveryConfig) FromDomain(config domain.DiscoveryConfig) error {
	target, err := json.Marshal(config.TargetConfig)
	if err != nil {
		return fmt.Errorf("could not marshal target config: %w", err)
	}

	discoveryType := config.Type
	if discoveryType == "" {
		discoveryType = domain.DiscoveryTypeNetwork
	}

	*p = PgDiscoveryConfig{
		ID:        uuid.UUID(config.ID),
		ProjectID: uuid.UUID(config.ProjectID),
		Name:      config.Name,
		Description: sql.NullString{
			String: config.Description,
			Valid:  config.Description != "",
		},
		DiscoveryType:     string(discoveryType),
		TargetConfig:      target,
		IsActive:          config.IsActive,
		IsAutoScanEnabled: config.IsAutoScanEnabled,
		ScanIntervalDays:  config.ScanIntervalDays,
		CreatedAt:         config.CreatedAt,
		UpdatedAt:         config.UpdatedAt,
	}
	if config.GatewayID != nil {
		p.GatewayID = uuid.NullUUID{UUID: uuid.UUID(*config.GatewayID), Valid: true}
	}

	return nil
}

type PgScanHistory struct {
	ID                uuid.UUID `db:"id"                  goqu:"skipinsert"`
	DiscoveryConfigID uuid.UUID `db:"discovery_config_id"`

	Status      string       `db:"status"`
	StartedAt   time.Time    `db:"started_at"`
	CompletedAt sql.NullTime `db:"completed_at"`

	TargetsScannedCount     int `db:"targets_scanned_count"`
	CertificatesFoundCount  int `db:"certificates_found_count"`
	InstallationsFoundCount int `db:"installations_found_count"`

	ErrorMessage sql.NullString `db:"error_message"`
}

func (p *PgScanHistory) ToDomain() *domain.ScanHistory {
	return &domain.ScanHistory{
		ID:                      domain.ScanHistoryID(p.ID),
		DiscoveryConfigID:       domain.DiscoveryID(p.DiscoveryConfigID),
		Status:                  domain.ScanStatus(p.Status),
		StartedAt:               p.StartedAt,
		CompletedAt:             p.CompletedAt.Time,
		TargetsScannedCount:     p.TargetsScannedCount,
		CertificatesFoundCount:  p.CertificatesFoundCount,
		InstallationsFoundCount: p.InstallationsFoundCount,
		ErrorMessage:            p.ErrorMessage.String,
	}
}

func (p *PgScanHistory) FromDomain(history domain.ScanHistory) {
	startedAt := history.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	*p = PgScanHistory{
		ID:                uuid.UUID(history.ID),
		DiscoveryConfigID: uuid.UUID(history.DiscoveryConfigID),
		Status:            string(history.Status),
		StartedAt:         startedAt,
		CompletedAt: sql.NullTime{
			Time:  history.CompletedAt,
			Valid: !history.CompletedAt.IsZero(),
		},
		TargetsScannedCount:     history.TargetsScannedCount,
		CertificatesFoundCount:  history.CertificatesFoundCount,
		InstallationsFoundCount: history.InstallationsFoundCount,
		ErrorMessage: sql.NullString{
			String: history.ErrorMessage,
			Valid:  history.ErrorMessage != "",
		},
	}
}

type PgCertificate struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Status       string `db:"status"`
	Source       string `db:"source"`
	FriendlyName string `db:"friendly_name"`
	CommonName   string `db:"common_name"`
	AltNames     string `db:"alt_names"`
	SerialNumber string `db:"serial_number"`

	NotBefore time.Time `db:"not_before"`
	NotAfter  time.Time `db:"not_after"`

	FingerprintSHA256 string         `db:"fingerprint_sha256"`
	FingerprintSHA1   sql.NullString `db:"fingerprint_sha1"`

	SubjectOrganization     sql.NullString `db:"subject_organization"`
	SubjectOrganizationUnit sql.NullString `db:"subject_organizational_unit"`
	SubjectCountry          sql.NullString `db:"subject_country"`
	SubjectState            sql.NullString `db:"subject_state"`
	SubjectLocality         sql.NullString `db:"subject_locality"`

	KeyAlgorithm       sql.NullString  `db:"key_algorithm"`
	SignatureAlgorithm sql.NullString  `db:"signature_algorithm"`
	KeyUsages          json.RawMessage `db:"key_usages"`
	ExtendedKeyUsages  json.RawMessage `db:"extended_key_usages"`
	IsCA               sql.NullBool    `db:"is_ca"`
	PathLength         sql.NullInt32   `db:"path_length"`

	DiscoveryMetadata json.RawMessage `db:"discovery_metadata"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCertificate) ToDomain() (*domain.Certificate, error) {
	cert := &domain.Certificate{
		ID:                      domain.CertificateID(p.ID),
		ProjectID:               domain.ProjectID(p.ProjectID),
		Status:                  domain.CertificateStatus(p.Status),
		Source:                  domain.CertificateSource(p.Source),
		FriendlyName:            p.FriendlyName,
		CommonName:              p.CommonName,
		AltNames:                p.AltNames,
		SerialNumber:            p.SerialNumber,
		NotBefore:               p.NotBefore,
		NotAfter:                p.NotAfter,
		FingerprintSHA256:       p.FingerprintSHA256,
		FingerprintSHA1:         p.FingerprintSHA1.String,
		SubjectOrganization:     p.SubjectOrganization.String,
		SubjectOrganizationUnit: p.SubjectOrganizationUnit.String,
		SubjectCountry:          p.SubjectCountry.String,
		SubjectState:            p.SubjectState.String,
		SubjectLocality:         p.SubjectLocality.String,
		KeyAlgorithm:            p.KeyAlgorithm.String,
		SignatureAlgorithm:      domain.SignatureAlgorithm(p.SignatureAlgorithm.String),
		CreatedAt:               p.CreatedAt,
	}
	if err := json.Unmarshal(p.KeyUsages, &cert.KeyUsages); err != nil {
		return nil, fmt.Errorf("could not unmarshal key usages: %w", err)
	}
	if err := json.Unmarshal(p.ExtendedKeyUsages, &cert.ExtendedKeyUsages); err != nil {
		return nil, fmt.Errorf("could not unmarshal extended key usages: %w", err)
	}
	if len(p.DiscoveryMetadata) > 0 {
		if err := json.Unmarshal(p.DiscoveryMetadata, &cert.DiscoveryMetadata); err != nil {
			return nil, fmt.Errorf("could not unmarshal discovery metadata: %w", err)
		}
	}
	if p.IsCA.Valid {
		isCA := p.IsCA.Bool
		cert.IsCA = &isCA
	}
	if p.PathLength.Valid {
		pathLength := int(p.PathLength.Int32)
		cert.PathLength = &pathLength
	}

	return cert, nil
}

func (p *PgCertificate) FromDomain(cert domain.Certificate) error {
	keyUsages, err := json.Marshal(nonNil(cert.KeyUsages))
	if err != nil {
		return fmt.Errorf("could not marshal key usages: %w", err)
	}
	extKeyUsages, err := json.Marshal(nonNil(cert.ExtendedKeyUsages))
	if err != nil {
		return fmt.Errorf("could not marshal extended key usages: %w", err)
	}
	metadata, err := json.Marshal(cert.DiscoveryMetadata)
	if err != nil {
		return fmt.Errorf("could not marshal discovery metadata: %w", err)
	}

	*p = PgCertificate{
		ID:                      uuid.UUID(cert.ID),
		ProjectID:               uuid.UUID(cert.ProjectID),
		Status:                  string(cert.Status),
		Source:                  string(cert.Source),
		FriendlyName:            cert.FriendlyName,
		CommonName:              cert.CommonName,
		AltNames:                cert.AltNames,
		SerialNumber:            cert.SerialNumber,
		NotBefore:               cert.NotBefore,
		NotAfter:                cert.NotAfter,
		FingerprintSHA256:       cert.FingerprintSHA256,
		FingerprintSHA1:         nullString(cert.FingerprintSHA1),
		SubjectOrganization:     nullString(cert.SubjectOrganization),
		SubjectOrganizationUnit: nullString(cert.SubjectOrganizationUnit),
		SubjectCountry:          nullString(cert.SubjectCountry),
		SubjectState:            nullString(cert.SubjectState),
		SubjectLocality:         nullString(cert.SubjectLocality),
		KeyAlgorithm:            nullString(cert.KeyAlgorithm),
		SignatureAlgorithm:      nullString(string(cert.SignatureAlgorithm)),
		KeyUsages:               keyUsages,
		ExtendedKeyUsages:       extKeyUsages,
		DiscoveryMetadata:       metadata,
		CreatedAt:               cert.CreatedAt,
	}
	if cert.IsCA != nil {
		p.IsCA = sql.NullBool{Bool: *cert.IsCA, Valid: true}
	}
	if cert.PathLength != nil {
		p.PathLength = sql.NullInt32{Int32: int32(*cert.PathLength), Valid: true} //nolint: gosec
	}

	return nil
}

type PgCertificateBody struct {
	CertificateID             uuid.UUID `db:"certificate_id"`
	EncryptedCertificate      []byte    `db:"encrypted_certificate"`
	EncryptedCertificateChain []byte    `db:"encrypted_certificate_chain"`
}

type PgInstallation struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	LocationType        string          `db:"location_type"`
	LocationDetails     json.RawMessage `db:"location_details"`
	LocationFingerprint string          `db:"location_fingerprint"`
	Name                string          `db:"name"`
	Type                string          `db:"type"`

	LastSeenAt time.Time `db:"last_seen_at"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgInstallation) ToDomain() (*domain.Installation, error) {
	var details domain.LocationDetails
	if err := json.Unmarshal(p.LocationDetails, &details); err != nil {
		return nil, fmt.Errorf("could not unmarshal location details: %w", err)
	}

	return &domain.Installation{
		ID:                  domain.InstallationID(p.ID),
		ProjectID:           domain.ProjectID(p.ProjectID),
		LocationType:        domain.LocationType(p.LocationType),
		LocationDetails:     details,
		LocationFingerprint: p.LocationFingerprint,
		Name:                p.Name,
		Type:                domain.InstallationType(p.Type),
		LastSeenAt:          p.LastSeenAt,
		CreatedAt:           p.CreatedAt,
	}, nil
}

func (p *PgInstallation) FromDomain(installation domain.Installation) error {
	details, err := json.Marshal(installation.LocationDetails)
	if err != nil {
		return fmt.Errorf("could not marshal location details: %w", err)
	}

	*p = PgInstallation{
		ID:                  uuid.UUID(installation.ID),
		ProjectID:           uuid.UUID(installation.ProjectID),
		LocationType:        string(installation.LocationType),
		LocationDetails:     details,
		LocationFingerprint: installation.LocationFingerprint,
		Name:                installation.Name,
		Type:                string(installation.Type),
		LastSeenAt:          installation.LastSeenAt,
		CreatedAt:           installation.CreatedAt,
	}

	return nil
}

type PgInstallationCertificate struct {
	InstallationID     uuid.UUID `db:"installation_id"`
	CertificateID      uuid.UUID `db:"certificate_id"`
	FirstSeenAt        time.Time `db:"first_seen_at"`
	LastSeenAt         time.Time `db:"last_seen_at"`
	IsCurrentlyPresent bool      `db:"is_currently_present"`
}

func (p *PgInstallationCertificate) ToDomain() domain.InstallationCertificate {
	return domain.InstallationCertificate{
		InstallationID:     domain.InstallationID(p.InstallationID),
		CertificateID:      domain.CertificateID(p.CertificateID),
		FirstSeenAt:        p.FirstSeenAt,
		LastSeenAt:         p.LastSeenAt,
		IsCurrentlyPresent: p.IsCurrentlyPresent,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func pgDiscoveryConfigsToDomain(rows []PgDiscoveryConfig) ([]domain.DiscoveryConfig, error) {
	out := make([]domain.DiscoveryConfig, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
