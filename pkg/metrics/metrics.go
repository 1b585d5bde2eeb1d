// Package metrics records discovery scan telemetry through OpenTelemetry
// instruments. Instruments are exported by whichever reader the meter
// provider is configured with, e.g. the Prometheus exporter of the ops server.
package metrics

import (
	"context"
	"fmt"
	"pkidiscovery/pkg/domain"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// ScanBuckets are histogram buckets in seconds sized for whole discovery scans.
var ScanBuckets = []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600} //nolint: gochecknoglobals

const meterName = "pkidiscovery"

// Endpoint outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeConnectionFailed = "connection_failed"
	OutcomeParseError       = "parse_error"
)

// Recorder owns the scan instruments. A nil *Recorder records nothing.
type Recorder struct {
	endpoints        metric.Int64Counter
	endpointDuration metric.Float64Histogram
	scans            metric.Float64Histogram
	breakerTrips     metric.Int64Counter
	certificates     metric.Int64Counter
}

// NewRecorder creates the instruments on a meter of mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	endpoints, err := meter.Int64Counter("discovery.endpoints.scanned",
		metric.WithDescription("Endpoints scanned for TLS certificates by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create endpoints counter: %w", err)
	}
	endpointDuration, err := meter.Float64Histogram("discovery.endpoint.duration",
		metric.WithDescription("Duration of a single endpoint scan"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create endpoint duration histogram: %w", err)
	}
	scans, err := meter.Float64Histogram("discovery.scan.duration",
		metric.WithDescription("Duration of discovery scans by final status"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(ScanBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create scan duration histogram: %w", err)
	}
	breakerTrips, err := meter.Int64Counter("discovery.gateway.breaker_trips",
		metric.WithDescription("Gateway scans aborted after consecutive connection failures"))
	if err != nil {
		return nil, fmt.Errorf("could not create breaker counter: %w", err)
	}
	certificates, err := meter.Int64Counter("discovery.certificates.stored",
		metric.WithDescription("Certificates observed by scans, split by whether they were new to the project"))
	if err != nil {
		return nil, fmt.Errorf("could not create certificates counter: %w", err)
	}

	return &Recorder{
		endpoints:        endpoints,
		endpointDuration: endpointDuration,
		scans:            scans,
		breakerTrips:     breakerTrips,
		certificates:     certificates,
	}, nil
}

// Outcome classifies an endpoint result.
func Outcome(result domain.ScanEndpointResult) string {
	switch {
	case result.Success:
		return OutcomeSuccess
	case result.FailureReason == domain.FailureCertificateParseError:
		return OutcomeParseError
	default:
		return OutcomeConnectionFailed
	}
}

// EndpointScanned records one endpoint scan. mode is "direct" or "gateway".
func (r *Recorder) EndpointScanned(ctx context.Context, mode string, result domain.ScanEndpointResult, took time.Duration) {
	if r == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("outcome", Outcome(result)),
	)
	r.endpoints.Add(ctx, 1, attrs)
	r.endpointDuration.Record(ctx, took.Seconds(), attrs)
}

// ScanFinished records the duration of a scan that reached a final status.
func (r *Recorder) ScanFinished(ctx context.Context, status domain.ScanStatus, took time.Duration) {
	if r == nil {
		return
	}

	r.scans.Record(ctx, took.Seconds(), metric.WithAttributes(attribute.String("status", string(status))))
}

// GatewayBreakerTripped records an aborted gateway scan.
func (r *Recorder) GatewayBreakerTripped(ctx context.Context) {
	if r == nil {
		return
	}

	r.breakerTrips.Add(ctx, 1)
}

// CertificateStored records a processed certificate.
func (r *Recorder) CertificateStored(ctx context.Context, created bool) {
	if r == nil {
		return
	}

	r.certificates.Add(ctx, 1, metric.WithAttributes(attribute.Bool("new", created)))
}
