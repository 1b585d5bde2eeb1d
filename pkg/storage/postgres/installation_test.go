package postgres_test

import (
	"context"
	"pkidiscovery/pkg/domain"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testInstallation(projectID domain.ProjectID, seenAt time.Time) domain.Installation {
	return domain.Installation{
		ProjectID:    projectID,
		LocationType: domain.LocationTypeNetwork,
		LocationDetails: domain.LocationDetails{
			IPAddress: "192.0.2.10",
			Port:      443,
			Protocol:  "tcp",
		},
		LocationFingerprint: strings.Repeat("d", 64),
		Name:                "192.0.2.10:443",
		Type:                domain.InstallationTypeUnknown,
		LastSeenAt:          seenAt,
	}
}

func TestPgSQL_UpsertInstallation(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	first := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	created, err := pg.UpsertInstallation(ctx, testInstallation(projectID, first))
	require.NoError(t, err)
	require.NotEqual(t, domain.InstallationID{}, created.ID)
	require.Equal(t, "192.0.2.10", created.LocationDetails.IPAddress)

	later := first.Add(30 * time.Minute)
	touched, err := pg.UpsertInstallation(ctx, testInstallation(projectID, later))
	require.NoError(t, err)
	require.Equal(t, created.ID, touched.ID)
	require.True(t, later.Equal(touched.LastSeenAt))

	// last_seen_at never moves backwards
	stale, err := pg.UpsertInstallation(ctx, testInstallation(projectID, first))
	require.NoError(t, err)
	require.True(t, later.Equal(stale.LastSeenAt))

	found, err := pg.InstallationByFingerprint(ctx, projectID, strings.Repeat("d", 64))
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	missing, err := pg.InstallationByFingerprint(ctx, domain.ProjectID(uuid.New()), strings.Repeat("d", 64))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpsertDiscoveryInstallation(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	config := newDiscovery(t, pg, projectID, "links")
	now := time.Now().UTC()

	installation, err := pg.UpsertInstallation(ctx, testInstallation(projectID, now))
	require.NoError(t, err)

	linked, err := pg.UpsertDiscoveryInstallation(ctx, config.ID, installation.ID, now)
	require.NoError(t, err)
	require.True(t, linked)

	linked, err = pg.UpsertDiscoveryInstallation(ctx, config.ID, installation.ID, now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, linked)

	_, err = pg.DeleteDiscoveryConfig(ctx, config.ID)
	require.NoError(t, err)

	linked, err = pg.UpsertDiscoveryInstallation(ctx, config.ID, installation.ID, now)
	require.NoError(t, err)
	require.False(t, linked)

	other := newDiscovery(t, pg, projectID, "other")
	linked, err = pg.UpsertDiscoveryInstallation(ctx, other.ID, domain.InstallationID(uuid.New()), now)
	require.NoError(t, err)
	require.False(t, linked)
}

func TestPgSQL_InstallationCertificates_Rotation(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	now := time.Now().UTC()

	installation, err := pg.UpsertInstallation(ctx, testInstallation(projectID, now))
	require.NoError(t, err)
	oldCert, err := pg.StoreCertificate(ctx, testCertificate(projectID, strings.Repeat("1", 64)))
	require.NoError(t, err)
	newCert, err := pg.StoreCertificate(ctx, testCertificate(projectID, strings.Repeat("2", 64)))
	require.NoError(t, err)

	// first scan serves the old certificate
	require.NoError(t, pg.UpsertInstallationCertificate(ctx, installation.ID, oldCert.ID, now))
	marked, err := pg.MarkAbsentInstallationCertificates(ctx, installation.ID, []domain.CertificateID{oldCert.ID})
	require.NoError(t, err)
	require.Zero(t, marked)

	// second scan serves the rotated one
	later := now.Add(time.Hour)
	require.NoError(t, pg.UpsertInstallationCertificate(ctx, installation.ID, newCert.ID, later))
	marked, err = pg.MarkAbsentInstallationCertificates(ctx, installation.ID, []domain.CertificateID{newCert.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, marked)

	links, err := pg.InstallationCertificates(ctx, installation.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	presence := map[domain.CertificateID]bool{}
	for _, link := range links {
		presence[link.CertificateID] = link.IsCurrentlyPresent
	}
	require.False(t, presence[oldCert.ID])
	require.True(t, presence[newCert.ID])

	// the old certificate coming back flips it to present again
	require.NoError(t, pg.UpsertInstallationCertificate(ctx, installation.ID, oldCert.ID, later))
	links, err = pg.InstallationCertificates(ctx, installation.ID)
	require.NoError(t, err)
	for _, link := range links {
		require.True(t, link.IsCurrentlyPresent)
	}

	// an empty presence set marks everything absent
	marked, err = pg.MarkAbsentInstallationCertificates(ctx, installation.ID, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, marked)
}
