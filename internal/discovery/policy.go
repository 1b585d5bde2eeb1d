// Package discovery turns a discovery's target configuration into concrete
// scan targets. It validates user scope against the configured limits, parses
// port lists, expands CIDR blocks, resolves domains against several public DNS
// providers and applies the private address policy.
package discovery

import (
	"pkidiscovery/internal/config"
	"time"
)

// DefaultPorts is the port list suggested for new discoveries.
const DefaultPorts = "443, 8443, 636, 993, 995"

// Limits bounds the size of a discovery's scope.
type Limits struct {
	MaxPorts   int
	MaxIPs     int
	MaxDomains int
	// MinCIDRPrefix is the smallest IPv4 prefix length accepted. IPv6 blocks
	// must hold no more addresses than an IPv4 block of this size.
	MinCIDRPrefix int
}

// DefaultLimits are used when no configuration overrides them.
var DefaultLimits = Limits{ //nolint: gochecknoglobals
	MaxPorts:      5,
	MaxIPs:        256,
	MaxDomains:    5,
	MinCIDRPrefix: 24,
}

// Policy combines scope limits with the private address policy.
type Policy struct {
	Limits Limits
	// AllowInternalConnections permits direct scans of private addresses.
	AllowInternalConnections bool
}

// BlockPrivate reports whether private and internal addresses must be
// excluded. Scans through a gateway are meant to reach private networks.
func (p Policy) BlockPrivate(hasGateway bool) bool {
	return !hasGateway && !p.AllowInternalConnections
}

// NewPolicy builds the policy from application configuration. Private
// addresses stay blocked for direct scans unless AllowInternalConnections is
// set explicitly, whatever the environment.
func NewPolicy(cfg *config.Config) Policy {
	return Policy{
		Limits: Limits{
			MaxPorts:      cfg.Discovery.MaxPorts,
			MaxIPs:        cfg.Discovery.MaxIPs,
			MaxDomains:    cfg.Discovery.MaxDomains,
			MinCIDRPrefix: cfg.Discovery.MinCIDRPrefix,
		},
		AllowInternalConnections: cfg.Discovery.AllowInternalConnections,
	}
}

// Options configure a Resolver.
type Options struct {
	Policy Policy
	// Providers are queried in parallel for every domain.
	Providers []Provider
	// Timeout bounds every individual DNS query.
	Timeout time.Duration
	// CNAMEMaxDepth caps the number of CNAME hops followed per provider.
	CNAMEMaxDepth int
}

// NewOptions constructs resolver Options from application configuration.
func NewOptions(cfg *config.Config) Options {
	providers := DefaultProviders
	if len(cfg.Discovery.DNSResolvers) > 0 {
		providers = make([]Provider, 0, len(cfg.Discovery.DNSResolvers))
		for _, r := range cfg.Discovery.DNSResolvers {
			providers = append(providers, Provider{Name: r.Name, Servers: r.Servers})
		}
	}

	return Options{
		Policy:        NewPolicy(cfg),
		Providers:     providers,
		Timeout:       cfg.Discovery.DNSTimeout,
		CNAMEMaxDepth: cfg.Discovery.CNAMEMaxDepth,
	}
}
