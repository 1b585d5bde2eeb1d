// Package api configures the operational HTTP server of the discovery worker:
// Prometheus metrics, health checks and pprof.
package api

import (
	"fmt"
	"net/http"
	"pkidiscovery/internal/config"
	"pkidiscovery/pkg/controller"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	healthPath = "/healthz"
	pprofPath  = "/debug/pprof/"
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	// It must exceed the longest CPU profile requested through pprof.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// HealthTimeout bounds the dependency checks of one health check request.
	HealthTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		HealthTimeout:     cfg.HTTP.HealthTimeout,
	}
}

type Deps struct {
	// Gatherer serves /metrics, defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// Checks are run by the health endpoint.
	Checks map[string]controller.HealthCheck
}

// NewMeterProvider creates an OpenTelemetry meter provider whose instruments
// are exported through the Prometheus registerer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It serves:
// - Prometheus metrics (MetricsPath)
// - dependency health checks (/healthz)
// - pprof endpoints for profiling (/debug/pprof/)
func NewServer(deps Deps, opts Options) *http.Server {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if opts.HealthTimeout <= 0 {
		opts.HealthTimeout = 5 * time.Second
	}

	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.Handle(healthPath, controller.Health(opts.HealthTimeout, deps.Checks))
	mux.Handle(pprofPath, controller.PprofMux(pprofPath))

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           controller.WithLogger(mux, opts.MetricsPath, healthPath),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
