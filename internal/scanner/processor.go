package scanner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"pkidiscovery/internal/discovery"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/storage"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	shortVarcharLimit = 255
	longVarcharLimit  = 4096
	truncationSuffix  = "... (truncated)"

	locationProtocol = "tls"
)

// errInstallationVanished aborts an installation transaction whose discovery
// or certificates were deleted concurrently.
var errInstallationVanished = errors.New("installation link target vanished")

// runSummary accumulates what a scan found.
type runSummary struct {
	certificates  map[domain.CertificateID]struct{}
	installations map[domain.InstallationID]struct{}
	parseErrors   []string
}

// observation is what a scan saw at one installation location. Results of
// several endpoints may fold into one observation, e.g. domains sharing an
// address or the addresses of one domain.
type observation struct {
	details      domain.LocationDetails
	name         string
	certificates []domain.CertificateID
	seen         map[domain.CertificateID]struct{}
	// complete is false when a certificate of any contributing result could
	// not be stored.
	complete bool
}

// observations keeps observations in first-seen order.
type observations struct {
	byLocation map[domain.LocationDetails]*observation
	order      []*observation
}

func newObservations() *observations {
	return &observations{byLocation: make(map[domain.LocationDetails]*observation)}
}

func (o *observations) add(details domain.LocationDetails, name string, certIDs []domain.CertificateID, complete bool) {
	obs, ok := o.byLocation[details]
	if !ok {
		obs = &observation{
			details:  details,
			name:     name,
			seen:     make(map[domain.CertificateID]struct{}),
			complete: true,
		}
		o.byLocation[details] = obs
		o.order = append(o.order, obs)
	}
	obs.complete = obs.complete && complete
	for _, id := range certIDs {
		if _, dup := obs.seen[id]; dup {
			continue
		}
		obs.seen[id] = struct{}{}
		obs.certificates = append(obs.certificates, id)
	}
}

// compareResults orders results by endpoint so processing does not depend on
// the order in which scans finished.
func compareResults(a, b domain.ScanEndpointResult) int {
	return cmp.Or(
		cmp.Compare(a.Host, b.Host),
		cmp.Compare(a.Port, b.Port),
		cmp.Compare(a.SNIHostname, b.SNIHostname),
	)
}

// processResults persists the certificates and installations of a scan. One
// installation is recorded per address and port, and one per domain and port.
// Each installation is linked to the union of the certificates observed at
// its location, so results sharing a location never mark each other's
// certificates as absent.
func (s *scanner) processResults(ctx context.Context,
	config *domain.DiscoveryConfig,
	results []domain.ScanEndpointResult,
	gatewayName string) (*runSummary, error) {
	ctx, span := tracer.Start(ctx, "scanner.processResults",
		trace.WithAttributes(attribute.Int("results", len(results))))
	defer span.End()

	summary := &runSummary{
		certificates:  make(map[domain.CertificateID]struct{}),
		installations: make(map[domain.InstallationID]struct{}),
	}
	addresses := newObservations()
	domains := newObservations()

	ordered := slices.Clone(results)
	slices.SortStableFunc(ordered, compareResults)
	for _, result := range ordered {
		if !result.Success {
			if result.FailureReason == domain.FailureCertificateParseError {
				summary.parseErrors = append(summary.parseErrors, fmt.Sprintf("%s: %s", result.Address(), result.Error))
			}

			continue
		}
		if len(result.Certificates) == 0 {
			continue
		}

		certIDs := s.storeCertificates(ctx, config, result)
		for _, id := range certIDs {
			summary.certificates[id] = struct{}{}
		}
		complete := len(certIDs) == len(result.Certificates)

		address := s.displayAddress(ctx, result.Host)
		addresses.add(domain.LocationDetails{
			IPAddress:   address,
			Port:        result.Port,
			Protocol:    locationProtocol,
			GatewayName: gatewayName,
		}, address, certIDs, complete)

		if result.SNIHostname != "" {
			domains.add(domain.LocationDetails{
				FQDN:        result.SNIHostname,
				Port:        result.Port,
				Protocol:    locationProtocol,
				GatewayName: gatewayName,
			}, result.SNIHostname, certIDs, complete)
		}
	}

	for _, obs := range slices.Concat(addresses.order, domains.order) {
		installationID, linked, err := s.recordInstallation(ctx, config, obs.details, obs.name, obs.certificates, obs.complete)
		if err != nil {
			return nil, err
		}
		if linked {
			summary.installations[installationID] = struct{}{}
		}
	}

	return summary, nil
}

// displayAddress returns host when it is an IP, otherwise the first address
// it resolves to, falling back to host itself.
func (s *scanner) displayAddress(ctx context.Context, host string) string {
	if discovery.IsIP(host) {
		return host
	}
	if addrs := s.resolver.ResolveDomain(ctx, host); len(addrs) > 0 {
		return addrs[0]
	}

	return host
}

// storeCertificates stores the certificates of a result and returns the IDs
// of those that could be stored. A certificate that cannot be stored is
// logged and skipped.
func (s *scanner) storeCertificates(ctx context.Context,
	config *domain.DiscoveryConfig,
	result domain.ScanEndpointResult) []domain.CertificateID {
	ids := make([]domain.CertificateID, 0, len(result.Certificates))
	for _, cert := range result.Certificates {
		id, err := s.storeCertificate(ctx, config, result, cert)
		if err != nil {
			logger.Error(ctx, "could not store discovered certificate",
				zap.String("endpoint", result.Address()),
				zap.String("fingerprint", cert.Fingerprint),
				zap.Error(err))

			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// storeCertificate returns the ID of the project certificate with cert's
// fingerprint, inserting it with its encrypted body when it is new.
func (s *scanner) storeCertificate(ctx context.Context,
	config *domain.DiscoveryConfig,
	result domain.ScanEndpointResult,
	cert domain.ScanCertificateResult) (domain.CertificateID, error) {
	existing, err := s.storage.CertificateByFingerprint(ctx, config.ProjectID, cert.Fingerprint)
	if err != nil {
		return domain.CertificateID{}, fmt.Errorf("could not get certificate: %w", err)
	}
	if existing != nil {
		s.metrics.CertificateStored(ctx, false)

		return existing.ID, nil
	}

	body, err := s.encryptBody(ctx, config.ProjectID, cert.PEMChain)
	if err != nil {
		return domain.CertificateID{}, err
	}

	var stored *domain.Certificate
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreCertificate(ctx, newCertificate(config, result, cert, s.now()))
		if err != nil {
			return fmt.Errorf("could not store certificate: %w", err)
		}
		if body != nil {
			body.CertificateID = res.ID
			if err := tx.StoreCertificateBody(ctx, *body); err != nil {
				return fmt.Errorf("could not store certificate body: %w", err)
			}
		}
		stored = res

		return nil
	})
	if errors.Is(err, storage.ErrUniqueViolation) {
		// another scan of the project inserted the fingerprint first
		existing, findErr := s.storage.CertificateByFingerprint(ctx, config.ProjectID, cert.Fingerprint)
		if findErr != nil {
			return domain.CertificateID{}, fmt.Errorf("could not get certificate: %w", findErr)
		}
		if existing != nil {
			s.metrics.CertificateStored(ctx, false)

			return existing.ID, nil
		}
	}
	if err != nil {
		return domain.CertificateID{}, err
	}
	s.metrics.CertificateStored(ctx, true)

	return stored.ID, nil
}

// encryptBody encrypts the leaf PEM and the rest of the chain. It returns nil
// when there is no PEM material.
func (s *scanner) encryptBody(ctx context.Context,
	projectID domain.ProjectID,
	pemChain []string) (*domain.CertificateBody, error) {
	if len(pemChain) == 0 || pemChain[0] == "" {
		return nil, nil //nolint: nilnil
	}

	leaf, err := s.encryptor.Encrypt(ctx, projectID, []byte(pemChain[0]))
	if err != nil {
		return nil, fmt.Errorf("could not encrypt certificate: %w", err)
	}
	body := &domain.CertificateBody{EncryptedCertificate: leaf}

	if len(pemChain) > 1 {
		chain, err := s.encryptor.Encrypt(ctx, projectID, []byte(strings.Join(pemChain[1:], "\n")))
		if err != nil {
			return nil, fmt.Errorf("could not encrypt certificate chain: %w", err)
		}
		body.EncryptedCertificateChain = chain
	}

	return body, nil
}

// recordInstallation upserts the installation at details, links it to the
// discovery and to certIDs. When complete is true, links to certificates not
// in certIDs are marked as no longer present. It reports false when the
// discovery or a certificate vanished in the meantime.
func (s *scanner) recordInstallation(ctx context.Context,
	config *domain.DiscoveryConfig,
	details domain.LocationDetails,
	name string,
	certIDs []domain.CertificateID,
	complete bool) (domain.InstallationID, bool, error) {
	seenAt := s.now()
	fingerprint := discovery.ComputeLocationFingerprint(domain.LocationTypeNetwork, details, config.GatewayID)

	var installationID domain.InstallationID
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		installation, err := tx.UpsertInstallation(ctx, domain.Installation{
			ProjectID:           config.ProjectID,
			LocationType:        domain.LocationTypeNetwork,
			LocationDetails:     details,
			LocationFingerprint: fingerprint,
			Name:                truncate(name, shortVarcharLimit),
			Type:                domain.InstallationTypeUnknown,
			LastSeenAt:          seenAt,
		})
		if err != nil {
			return fmt.Errorf("could not upsert installation: %w", err)
		}

		linked, err := tx.UpsertDiscoveryInstallation(ctx, config.ID, installation.ID, seenAt)
		if err != nil {
			return fmt.Errorf("could not link installation to discovery: %w", err)
		}
		if !linked {
			return errInstallationVanished
		}

		for _, certID := range certIDs {
			if err := tx.UpsertInstallationCertificate(ctx, installation.ID, certID, seenAt); err != nil {
				if errors.Is(err, storage.ErrForeignKeyViolation) {
					return errInstallationVanished
				}

				return fmt.Errorf("could not link certificate to installation: %w", err)
			}
		}

		if complete {
			if _, err := tx.MarkAbsentInstallationCertificates(ctx, installation.ID, certIDs); err != nil {
				return fmt.Errorf("could not update certificate presence: %w", err)
			}
		}
		installationID = installation.ID

		return nil
	})
	if errors.Is(err, errInstallationVanished) {
		logger.Debug(ctx, "installation link skipped", zap.String("installation", name))

		return domain.InstallationID{}, false, nil
	}
	if err != nil {
		return domain.InstallationID{}, false, fmt.Errorf("could not record installation %s: %w", name, err)
	}

	return installationID, true, nil
}

// newCertificate builds the inventory row of a discovered certificate.
func newCertificate(config *domain.DiscoveryConfig,
	result domain.ScanEndpointResult,
	cert domain.ScanCertificateResult,
	discoveredAt time.Time) domain.Certificate {
	friendlyName := truncate(cert.CommonName, shortVarcharLimit)
	if friendlyName == "" {
		friendlyName = "Discovered: " + prefix(cert.Fingerprint, 16)
	}

	serial := cert.SerialNumber
	if serial == "" {
		serial = prefix(cert.Fingerprint, 40)
	}
	serial = truncate(serial, shortVarcharLimit)
	if serial == "" {
		serial = "unknown"
	}

	commonName := truncate(cert.CommonName, shortVarcharLimit)
	if commonName == "" {
		commonName = "Unknown"
	}

	return domain.Certificate{
		ProjectID:               config.ProjectID,
		Status:                  domain.CertificateStatusActive,
		Source:                  domain.CertificateSourceDiscovered,
		FriendlyName:            friendlyName,
		CommonName:              commonName,
		AltNames:                truncate(cert.AltNames, longVarcharLimit),
		SerialNumber:            serial,
		NotBefore:               cert.NotBefore,
		NotAfter:                cert.NotAfter,
		FingerprintSHA256:       cert.Fingerprint,
		FingerprintSHA1:         cert.FingerprintSHA1,
		SubjectOrganization:     truncate(cert.SubjectOrganization, shortVarcharLimit),
		SubjectOrganizationUnit: truncate(cert.SubjectOrganizationUnit, shortVarcharLimit),
		SubjectCountry:          truncate(cert.SubjectCountry, shortVarcharLimit),
		SubjectState:            truncate(cert.SubjectState, shortVarcharLimit),
		SubjectLocality:         truncate(cert.SubjectLocality, shortVarcharLimit),
		KeyAlgorithm:            cert.KeyAlgorithm,
		SignatureAlgorithm:      cert.SignatureAlgorithm,
		KeyUsages:               cert.KeyUsages,
		ExtendedKeyUsages:       cert.ExtendedKeyUsages,
		IsCA:                    cert.IsCA,
		PathLength:              cert.PathLength,
		DiscoveryMetadata: domain.DiscoveryMetadata{
			DiscoveredBy:       config.ID,
			Host:               result.Host,
			Port:               result.Port,
			SNIHostname:        result.SNIHostname,
			DiscoveredAt:       discoveredAt,
			IssuerCommonName:   truncate(cert.IssuerCommonName, shortVarcharLimit),
			IssuerOrganization: truncate(cert.IssuerOrganization, shortVarcharLimit),
		},
	}
}

// truncate shortens value to at most limit runes, ending it with
// truncationSuffix when it was cut.
func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}

	keep := limit - utf8.RuneCountInString(truncationSuffix)
	if keep < 0 {
		keep = 0
	}

	return string([]rune(value)[:keep]) + truncationSuffix
}

func prefix(value string, n int) string {
	if len(value) <= n {
		return value
	}

	return value[:n]
}

// completionMessage summarizes the non-fatal problems of a completed scan.
func completionMessage(parseErrors []string, filteredPrivate int) string {
	var parts []string
	if len(parseErrors) > 0 {
		parts = append(parts, fmt.Sprintf("%d certificate(s) could not be parsed: %s",
			len(parseErrors), strings.Join(parseErrors, "; ")))
	}
	if filteredPrivate > 0 {
		parts = append(parts, fmt.Sprintf("%d private address(es) were excluded from the scan", filteredPrivate))
	}

	return strings.Join(parts, ". ")
}
