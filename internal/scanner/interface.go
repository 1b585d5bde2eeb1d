package scanner

import (
	"context"
	"pkidiscovery/internal/discovery"
	"pkidiscovery/pkg/domain"
)

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	// Trigger claims the project scan slot for a discovery and enqueues its scan job.
	Trigger(ctx context.Context, discoveryID domain.DiscoveryID) (*domain.DiscoveryConfig, error)
	// EnqueueDue triggers every discovery whose automatic scan is due and
	// returns how many scans were enqueued.
	EnqueueDue(ctx context.Context) (int, error)
	// Execute runs a full scan of a discovery and persists its outcome.
	Execute(ctx context.Context, discoveryID domain.DiscoveryID) error
}

// TargetResolver expands discovery targets into endpoints.
type TargetResolver interface {
	ResolveTargets(ctx context.Context, target domain.TargetConfig, hasGateway bool) (discovery.Resolution, error)
	ResolveDomain(ctx context.Context, name string) []string
}

// EndpointScanner scans a single endpoint over TLS.
type EndpointScanner interface {
	ScanEndpoint(ctx context.Context, host string, port int, sni string) domain.ScanEndpointResult
}
