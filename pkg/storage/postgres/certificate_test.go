package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/storage"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testCertificate(projectID domain.ProjectID, fingerprint string) domain.Certificate {
	isCA := false
	now := time.Now().UTC().Truncate(time.Second)

	return domain.Certificate{
		ProjectID:          projectID,
		Status:             domain.CertificateStatusActive,
		Source:             domain.CertificateSourceDiscovered,
		FriendlyName:       "service.example.com",
		CommonName:         "service.example.com",
		AltNames:           "service.example.com, api.example.com",
		SerialNumber:       "0A1B",
		NotBefore:          now.Add(-time.Hour),
		NotAfter:           now.Add(90 * 24 * time.Hour),
		FingerprintSHA256:  fingerprint,
		FingerprintSHA1:    strings.Repeat("B", 40),
		KeyAlgorithm:       "EC-prime256v1",
		SignatureAlgorithm: domain.SignatureAlgorithmECDSASHA256,
		KeyUsages:          []domain.KeyUsage{domain.KeyUsageDigitalSignature},
		ExtendedKeyUsages:  []domain.ExtendedKeyUsage{domain.ExtendedKeyUsageServerAuth},
		IsCA:               &isCA,
		DiscoveryMetadata: domain.DiscoveryMetadata{
			DiscoveredBy: domain.DiscoveryID(uuid.New()),
			Host:         "192.0.2.10",
			Port:         443,
			SNIHostname:  "service.example.com",
			DiscoveredAt: now,
		},
	}
}

func TestPgSQL_Certificates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	fingerprint := strings.Repeat("A", 64)

	missing, err := pg.CertificateByFingerprint(ctx, projectID, fingerprint)
	require.NoError(t, err)
	require.Nil(t, missing)

	cert := testCertificate(projectID, fingerprint)
	stored, err := pg.StoreCertificate(ctx, cert)
	require.NoError(t, err)
	require.NotEqual(t, domain.CertificateID{}, stored.ID)

	found, err := pg.CertificateByFingerprint(ctx, projectID, fingerprint)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, stored.ID, found.ID)
	require.Equal(t, cert.AltNames, found.AltNames)
	require.Equal(t, cert.KeyUsages, found.KeyUsages)
	require.Equal(t, cert.ExtendedKeyUsages, found.ExtendedKeyUsages)
	require.Equal(t, cert.SignatureAlgorithm, found.SignatureAlgorithm)
	require.NotNil(t, found.IsCA)
	require.False(t, *found.IsCA)
	require.Nil(t, found.PathLength)
	require.Equal(t, cert.DiscoveryMetadata.DiscoveredBy, found.DiscoveryMetadata.DiscoveredBy)
	require.True(t, cert.NotAfter.Equal(found.NotAfter))

	// the fingerprint is unique per project only
	_, err = pg.StoreCertificate(ctx, cert)
	require.ErrorIs(t, err, storage.ErrUniqueViolation)

	_, err = pg.StoreCertificate(ctx, testCertificate(domain.ProjectID(uuid.New()), fingerprint))
	require.NoError(t, err)
}

func TestPgSQL_StoreCertificateBody(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	stored, err := pg.StoreCertificate(ctx, testCertificate(domain.ProjectID(uuid.New()), strings.Repeat("C", 64)))
	require.NoError(t, err)

	// arbitrary binary, including NUL bytes
	body := []byte{0x00, 0xff, 0x10, 0x00, 'x'}
	require.NoError(t, pg.StoreCertificateBody(ctx, domain.CertificateBody{
		CertificateID:        stored.ID,
		EncryptedCertificate: body,
	}))

	var (
		got   []byte
		chain []byte
	)
	row := pg.Pool.QueryRow(ctx,
		`SELECT encrypted_certificate, encrypted_certificate_chain FROM certificate_bodies WHERE certificate_id = $1`,
		uuid.UUID(stored.ID))
	require.NoError(t, row.Scan(&got, &chain))
	require.Equal(t, body, got)
	require.Nil(t, chain)

	err = pg.StoreCertificateBody(ctx, domain.CertificateBody{
		CertificateID:        domain.CertificateID(uuid.New()),
		EncryptedCertificate: body,
	})
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)
}

// storeOrReuse inserts cert with its body in one transaction, or returns the
// ID of the row another writer committed first.
func storeOrReuse(ctx context.Context, s storage.Storage, cert domain.Certificate) (domain.CertificateID, bool, error) {
	var id domain.CertificateID
	err := s.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreCertificate(ctx, cert)
		if err != nil {
			return err
		}
		id = stored.ID

		return tx.StoreCertificateBody(ctx, domain.CertificateBody{
			CertificateID:        stored.ID,
			EncryptedCertificate: []byte("ciphertext"),
		})
	})
	if errors.Is(err, storage.ErrUniqueViolation) {
		existing, findErr := s.CertificateByFingerprint(ctx, cert.ProjectID, cert.FingerprintSHA256)
		if findErr != nil {
			return domain.CertificateID{}, false, findErr
		}
		if existing == nil {
			return domain.CertificateID{}, false, fmt.Errorf("certificate %s missing after conflict", cert.FingerprintSHA256)
		}

		return existing.ID, false, nil
	}
	if err != nil {
		return domain.CertificateID{}, false, err
	}

	return id, true, nil
}

func TestPgSQL_StoreCertificate_ConcurrentInsertsConverge(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	fingerprint := strings.Repeat("D", 64)

	const writers = 2
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		ids     [writers]domain.CertificateID
		created [writers]bool
		errs    [writers]error
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ids[i], created[i], errs[i] = storeOrReuse(ctx, pg, testCertificate(projectID, fingerprint))
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, ids[0], ids[1])
	require.NotEqual(t, created[0], created[1], "exactly one writer inserts the row")

	var rows, bodies int
	require.NoError(t, pg.Pool.QueryRow(ctx,
		`SELECT count(*) FROM certificates WHERE project_id = $1 AND fingerprint_sha256 = $2`,
		uuid.UUID(projectID), fingerprint).Scan(&rows))
	require.NoError(t, pg.Pool.QueryRow(ctx,
		`SELECT count(*) FROM certificate_bodies WHERE certificate_id = $1`,
		uuid.UUID(ids[0])).Scan(&bodies))
	require.Equal(t, 1, rows)
	require.Equal(t, 1, bodies)
}
