package tlsscan_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"pkidiscovery/internal/tlsscan"
	"pkidiscovery/pkg/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractCertificate_Leaf(t *testing.T) {
	chain := newChain(t)

	res, err := tlsscan.ExtractCertificate(chain.leaf.der)
	require.NoError(t, err)

	require.Equal(t, "service.example.com", res.CommonName)
	require.Equal(t, "service.example.com, alt.service.example.com, 127.0.0.1", res.AltNames)
	require.Equal(t, "Example Corp", res.SubjectOrganization)
	require.Equal(t, "Platform", res.SubjectOrganizationUnit)
	require.Equal(t, "US", res.SubjectCountry)
	require.Equal(t, "California", res.SubjectState)
	require.Equal(t, "San Francisco", res.SubjectLocality)
	require.Equal(t, "Test Intermediate", res.IssuerCommonName)
	require.Equal(t, "Test PKI", res.IssuerOrganization)

	require.Len(t, res.Fingerprint, 64)
	require.Equal(t, strings.ToUpper(res.Fingerprint), res.Fingerprint)
	require.Equal(t, tlsscan.Fingerprint(chain.leaf.der), res.Fingerprint)
	require.Len(t, res.FingerprintSHA1, 40)

	require.Equal(t, "EC-prime256v1", res.KeyAlgorithm)
	require.Equal(t, domain.SignatureAlgorithmECDSASHA256, res.SignatureAlgorithm)
	require.Equal(t, []domain.KeyUsage{domain.KeyUsageDigitalSignature, domain.KeyUsageKeyEncipherment}, res.KeyUsages)
	require.Equal(t, []domain.ExtendedKeyUsage{
		domain.ExtendedKeyUsageServerAuth,
		domain.ExtendedKeyUsageClientAuth,
	}, res.ExtendedKeyUsages)
	require.Nil(t, res.IsCA)
	require.Nil(t, res.PathLength)

	require.Equal(t, chain.leaf.cert.NotAfter.UTC(), res.NotAfter)
	require.NotEmpty(t, res.SerialNumber)
	require.Len(t, res.PEMChain, 1)
}

func TestExtractCertificate_CA(t *testing.T) {
	chain := newChain(t)

	root, err := tlsscan.ExtractCertificate(chain.root.der)
	require.NoError(t, err)
	require.NotNil(t, root.IsCA)
	require.True(t, *root.IsCA)
	require.NotNil(t, root.PathLength)
	require.Equal(t, 1, *root.PathLength)
	require.Equal(t, []domain.KeyUsage{domain.KeyUsageKeyCertSign, domain.KeyUsageCRLSign}, root.KeyUsages)

	intermediate, err := tlsscan.ExtractCertificate(chain.intermediate.der)
	require.NoError(t, err)
	require.NotNil(t, intermediate.PathLength)
	require.Equal(t, 0, *intermediate.PathLength)
}

func TestExtractCertificate_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	leaf := newLeaf(t, "rsa.example.com", nil, key)

	res, err := tlsscan.ExtractCertificate(leaf.der)
	require.NoError(t, err)
	require.Equal(t, "RSA-2048", res.KeyAlgorithm)
	require.Equal(t, domain.SignatureAlgorithmRSASHA256, res.SignatureAlgorithm)
}

func TestExtractCertificate_Invalid(t *testing.T) {
	_, err := tlsscan.ExtractCertificate([]byte("definitely not DER"))
	require.Error(t, err)
}

func TestSignatureAlgorithmOf(t *testing.T) {
	tests := []struct {
		alg  x509.SignatureAlgorithm
		want domain.SignatureAlgorithm
	}{
		{x509.SHA256WithRSA, domain.SignatureAlgorithmRSASHA256},
		{x509.SHA384WithRSA, domain.SignatureAlgorithmRSASHA384},
		{x509.SHA512WithRSA, domain.SignatureAlgorithmRSASHA512},
		{x509.ECDSAWithSHA256, domain.SignatureAlgorithmECDSASHA256},
		{x509.ECDSAWithSHA384, domain.SignatureAlgorithmECDSASHA384},
		{x509.ECDSAWithSHA512, domain.SignatureAlgorithmECDSASHA512},
		{x509.SHA1WithRSA, ""},
		{x509.SHA256WithRSAPSS, ""},
		{x509.PureEd25519, ""},
		{x509.UnknownSignatureAlgorithm, ""},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tlsscan.SignatureAlgorithmOf(tt.alg))
		})
	}
}

func TestEncodePEM(t *testing.T) {
	chain := newChain(t)

	encoded := tlsscan.EncodePEM(chain.leaf.der)
	require.True(t, strings.HasPrefix(encoded, "-----BEGIN CERTIFICATE-----\n"))
	for _, line := range strings.Split(strings.TrimSpace(encoded), "\n") {
		require.LessOrEqual(t, len(line), 64)
	}

	block, _ := pem.Decode([]byte(encoded))
	require.NotNil(t, block)
	require.Equal(t, chain.leaf.der, block.Bytes)
}
