// Package tlsscan connects to a single TLS endpoint and extracts the certificate
// chain it presents. Verification is disabled so that expired, self-signed
// and mismatched certificates are reported too.
package tlsscan

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/netip"
	"pkidiscovery/internal/config"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure a Scanner.
type Options struct {
	// Timeout bounds the TCP connect and TLS handshake of a single endpoint scan.
	Timeout time.Duration
}

// NewOptions constructs Options from application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{Timeout: cfg.Discovery.ScanTimeout}
}

// Scanner scans TLS endpoints.
type Scanner struct {
	options Options
}

// New creates a Scanner.
func New(options Options) *Scanner {
	if options.Timeout <= 0 {
		options.Timeout = 10 * time.Second
	}

	return &Scanner{options: options}
}

// ScanEndpoint connects to host:port, completes a TLS handshake and returns
// the presented leaf with its walked chain. sni overrides the server name;
// without it the host is sent unless it is an IP literal.
//
// Failures never return an error: a handshake that fails because a
// certificate cannot be parsed is reported as CERTIFICATE_PARSE_ERROR, every
// other dial or handshake failure as CONNECTION_FAILED.
func (s *Scanner) ScanEndpoint(ctx context.Context, host string, port int, sni string) domain.ScanEndpointResult {
	return ScanEndpoint(ctx, host, port, s.options.Timeout, sni)
}

// ScanEndpoint scans a single endpoint with the given timeout. See Scanner.ScanEndpoint.
func ScanEndpoint(ctx context.Context, host string, port int, timeout time.Duration, sni string) domain.ScanEndpointResult {
	result := domain.ScanEndpointResult{Host: host, Port: port, SNIHostname: sni}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ctx = logger.WithFields(ctx, zap.String("endpoint", addr))

	serverName := sni
	if serverName == "" {
		if _, err := netip.ParseAddr(host); err != nil {
			serverName = host
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config: &tls.Config{
			InsecureSkipVerify: true, //nolint: gosec
			MinVersion:         tls.VersionTLS12,
			ServerName:         serverName,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		result.Error = err.Error()
		if isCertificateParseError(err) {
			result.FailureReason = domain.FailureCertificateParseError
			logger.Warn(ctx, "endpoint presented an unparseable certificate", zap.Error(err))

			return result
		}

		result.FailureReason = domain.FailureConnectionFailed
		logger.Debug(ctx, "could not connect to endpoint", zap.Error(err))

		return result
	}
	defer func() { _ = conn.Close() }()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		result.FailureReason = domain.FailureConnectionFailed
		result.Error = "unexpected connection type"

		return result
	}

	peers := tlsConn.ConnectionState().PeerCertificates
	if len(peers) == 0 {
		result.Success = true

		return result
	}

	chain := WalkChain(peers)
	leaf, err := ExtractCertificate(chain[0].Raw)
	if err != nil {
		result.FailureReason = domain.FailureCertificateParseError
		result.Error = err.Error()
		logger.Warn(ctx, "could not extract certificate metadata", zap.Error(err))

		return result
	}

	leaf.PEMChain = make([]string, 0, len(chain))
	for _, c := range chain {
		leaf.PEMChain = append(leaf.PEMChain, EncodePEM(c.Raw))
	}

	result.Success = true
	result.Certificates = []domain.ScanCertificateResult{leaf}

	return result
}

// WalkChain orders the presented certificates from the leaf (the first one)
// toward the root by following issuers. Each certificate appears once; the
// walk stops when no issuer is presented or a certificate repeats.
func WalkChain(peers []*x509.Certificate) []*x509.Certificate {
	if len(peers) == 0 {
		return nil
	}

	leaf := peers[0]
	chain := []*x509.Certificate{leaf}
	seen := map[string]struct{}{Fingerprint(leaf.Raw): {}}

	for current := leaf; len(chain) < len(peers); {
		next := issuerOf(current, peers)
		if next == nil {
			break
		}

		fp := Fingerprint(next.Raw)
		if _, ok := seen[fp]; ok {
			break
		}
		seen[fp] = struct{}{}
		chain = append(chain, next)
		current = next
	}

	return chain
}

// issuerOf finds the certificate among candidates that issued cert, preferring
// a key identifier match over a plain subject match.
func issuerOf(cert *x509.Certificate, candidates []*x509.Certificate) *x509.Certificate {
	var bySubject *x509.Certificate
	for _, c := range candidates {
		if !bytes.Equal(c.RawSubject, cert.RawIssuer) {
			continue
		}
		if len(cert.AuthorityKeyId) > 0 && bytes.Equal(c.SubjectKeyId, cert.AuthorityKeyId) {
			return c
		}
		if bySubject == nil {
			bySubject = c
		}
	}

	return bySubject
}

func isCertificateParseError(err error) bool {
	var certErr x509.CertificateInvalidError
	if errors.As(err, &certErr) {
		return true
	}

	return strings.Contains(err.Error(), "failed to parse certificate")
}
