package tlsscan

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/sha1" //nolint: gosec
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"pkidiscovery/pkg/domain"
	"strconv"
	"strings"
)

// signatureAlgorithms maps signature family and hash to the normalized
// algorithm. Combinations that are not listed are reported as unknown.
var signatureAlgorithms = map[string]map[string]domain.SignatureAlgorithm{ //nolint: gochecknoglobals
	"RSASSA-PKCS1-v1_5": {
		"SHA-256": domain.SignatureAlgorithmRSASHA256,
		"SHA-384": domain.SignatureAlgorithmRSASHA384,
		"SHA-512": domain.SignatureAlgorithmRSASHA512,
	},
	"ECDSA": {
		"SHA-256": domain.SignatureAlgorithmECDSASHA256,
		"SHA-384": domain.SignatureAlgorithmECDSASHA384,
		"SHA-512": domain.SignatureAlgorithmECDSASHA512,
	},
}

// signatureParts splits an x509 signature algorithm into its family and hash.
func signatureParts(alg x509.SignatureAlgorithm) (family, hash string) {
	switch alg {
	case x509.MD5WithRSA:
		return "RSASSA-PKCS1-v1_5", "MD5"
	case x509.SHA1WithRSA:
		return "RSASSA-PKCS1-v1_5", "SHA-1"
	case x509.SHA256WithRSA:
		return "RSASSA-PKCS1-v1_5", "SHA-256"
	case x509.SHA384WithRSA:
		return "RSASSA-PKCS1-v1_5", "SHA-384"
	case x509.SHA512WithRSA:
		return "RSASSA-PKCS1-v1_5", "SHA-512"
	case x509.SHA256WithRSAPSS:
		return "RSASSA-PSS", "SHA-256"
	case x509.SHA384WithRSAPSS:
		return "RSASSA-PSS", "SHA-384"
	case x509.SHA512WithRSAPSS:
		return "RSASSA-PSS", "SHA-512"
	case x509.ECDSAWithSHA1:
		return "ECDSA", "SHA-1"
	case x509.ECDSAWithSHA256:
		return "ECDSA", "SHA-256"
	case x509.ECDSAWithSHA384:
		return "ECDSA", "SHA-384"
	case x509.ECDSAWithSHA512:
		return "ECDSA", "SHA-512"
	case x509.PureEd25519:
		return "Ed25519", ""
	default:
		return "", ""
	}
}

// SignatureAlgorithmOf returns the normalized signature algorithm, or an
// empty value when the combination is not supported.
func SignatureAlgorithmOf(alg x509.SignatureAlgorithm) domain.SignatureAlgorithm {
	family, hash := signatureParts(alg)

	return signatureAlgorithms[family][hash]
}

var keyUsageNames = []struct { //nolint: gochecknoglobals
	bit  x509.KeyUsage
	name domain.KeyUsage
}{
	{x509.KeyUsageDigitalSignature, domain.KeyUsageDigitalSignature},
	{x509.KeyUsageContentCommitment, domain.KeyUsageNonRepudiation},
	{x509.KeyUsageKeyEncipherment, domain.KeyUsageKeyEncipherment},
	{x509.KeyUsageDataEncipherment, domain.KeyUsageDataEncipherment},
	{x509.KeyUsageKeyAgreement, domain.KeyUsageKeyAgreement},
	{x509.KeyUsageCertSign, domain.KeyUsageKeyCertSign},
	{x509.KeyUsageCRLSign, domain.KeyUsageCRLSign},
	{x509.KeyUsageEncipherOnly, domain.KeyUsageEncipherOnly},
	{x509.KeyUsageDecipherOnly, domain.KeyUsageDecipherOnly},
}

var extKeyUsageNames = map[x509.ExtKeyUsage]domain.ExtendedKeyUsage{ //nolint: gochecknoglobals
	x509.ExtKeyUsageServerAuth:      domain.ExtendedKeyUsageServerAuth,
	x509.ExtKeyUsageClientAuth:      domain.ExtendedKeyUsageClientAuth,
	x509.ExtKeyUsageCodeSigning:     domain.ExtendedKeyUsageCodeSigning,
	x509.ExtKeyUsageEmailProtection: domain.ExtendedKeyUsageEmailProtection,
	x509.ExtKeyUsageTimeStamping:    domain.ExtendedKeyUsageTimeStamping,
	x509.ExtKeyUsageOCSPSigning:     domain.ExtendedKeyUsageOCSPSigning,
}

var curveNames = map[string]string{ //nolint: gochecknoglobals
	"P-224": "secp224r1",
	"P-256": "prime256v1",
	"P-384": "secp384r1",
	"P-521": "secp521r1",
}

// EncodePEM returns the PEM encoding of a DER certificate, wrapped at 64 characters.
func EncodePEM(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

// Fingerprint returns the uppercase hex SHA-256 of a DER certificate.
func Fingerprint(der []byte) string {
	sum := sha256.Sum256(der)

	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// ExtractCertificate parses a DER certificate and returns its metadata with
// PEMChain holding only the certificate itself.
func ExtractCertificate(der []byte) (domain.ScanCertificateResult, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return domain.ScanCertificateResult{}, fmt.Errorf("could not parse certificate: %w", err)
	}

	sha1Sum := sha1.Sum(der) //nolint: gosec
	res := domain.ScanCertificateResult{
		PEMChain:        []string{EncodePEM(der)},
		Fingerprint:     Fingerprint(der),
		FingerprintSHA1: strings.ToUpper(hex.EncodeToString(sha1Sum[:])),

		CommonName: cert.Subject.CommonName,
		AltNames:   altNames(cert),

		SubjectOrganization:     strings.Join(cert.Subject.Organization, ", "),
		SubjectOrganizationUnit: strings.Join(cert.Subject.OrganizationalUnit, ", "),
		SubjectCountry:          strings.Join(cert.Subject.Country, ", "),
		SubjectState:            strings.Join(cert.Subject.Province, ", "),
		SubjectLocality:         strings.Join(cert.Subject.Locality, ", "),

		IssuerCommonName:   cert.Issuer.CommonName,
		IssuerOrganization: strings.Join(cert.Issuer.Organization, ", "),

		NotBefore:    cert.NotBefore.UTC(),
		NotAfter:     cert.NotAfter.UTC(),
		SerialNumber: serialHex(cert),

		KeyAlgorithm:       keyAlgorithm(cert),
		SignatureAlgorithm: SignatureAlgorithmOf(cert.SignatureAlgorithm),
	}

	for _, ku := range keyUsageNames {
		if cert.KeyUsage&ku.bit != 0 {
			res.KeyUsages = append(res.KeyUsages, ku.name)
		}
	}
	for _, eku := range cert.ExtKeyUsage {
		if name, ok := extKeyUsageNames[eku]; ok {
			res.ExtendedKeyUsages = append(res.ExtendedKeyUsages, name)
		}
	}

	if cert.BasicConstraintsValid {
		isCA := cert.IsCA
		res.IsCA = &isCA
		if cert.MaxPathLen > 0 || (cert.MaxPathLen == 0 && cert.MaxPathLenZero) {
			pathLen := cert.MaxPathLen
			res.PathLength = &pathLen
		}
	}

	return res, nil
}

func altNames(cert *x509.Certificate) string {
	names := make([]string, 0, len(cert.DNSNames)+len(cert.IPAddresses)+len(cert.EmailAddresses)+len(cert.URIs))
	names = append(names, cert.DNSNames...)
	for _, ip := range cert.IPAddresses {
		names = append(names, ip.String())
	}
	names = append(names, cert.EmailAddresses...)
	for _, uri := range cert.URIs {
		names = append(names, uri.String())
	}

	return strings.Join(names, ", ")
}

func serialHex(cert *x509.Certificate) string {
	if cert.SerialNumber == nil {
		return ""
	}

	s := strings.ToUpper(cert.SerialNumber.Text(16))
	if len(s)%2 == 1 {
		s = "0" + s
	}

	return s
}

func keyAlgorithm(cert *x509.Certificate) string {
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return "RSA-" + strconv.Itoa(pub.N.BitLen())
	case *ecdsa.PublicKey:
		name := pub.Curve.Params().Name
		if n, ok := curveNames[name]; ok {
			name = n
		}

		return "EC-" + name
	default:
		return ""
	}
}
