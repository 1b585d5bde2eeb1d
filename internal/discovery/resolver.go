package discovery

import (
	"context"
	"fmt"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/logger"
	"slices"
	"strings"

	"github.com/miekg/dns"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Resolution is the result of resolving a target configuration.
type Resolution struct {
	Targets []domain.ScanTarget
	// FilteredPrivate counts addresses dropped by the private address policy.
	FilteredPrivate int
	// Unresolved lists domains for which no provider returned an address.
	Unresolved []string
}

// Resolver resolves domains and target configurations into scan targets.
type Resolver struct {
	querier Querier
	options Options
}

// NewResolver creates a Resolver. A nil querier uses NewDNSQuerier.
func NewResolver(querier Querier, options Options) *Resolver {
	if querier == nil {
		querier = NewDNSQuerier()
	}
	if options.CNAMEMaxDepth <= 0 {
		options.CNAMEMaxDepth = 10
	}

	return &Resolver{
		querier: querier,
		options: options,
	}
}

// providerAnswer holds what a single provider returned for a domain.
type providerAnswer struct {
	addrs  []string
	cnames []string
}

// ResolveDomain returns the union of the addresses every provider returns for
// name, including the addresses of CNAME targets. Lookup errors are logged and
// treated as empty answers. The result is deduplicated and sorted.
func (r *Resolver) ResolveDomain(ctx context.Context, name string) []string {
	ctx = logger.WithFields(ctx, zap.String("domain", name))

	answers := pool.NewWithResults[providerAnswer]()
	for _, provider := range r.options.Providers {
		answers.Go(func() providerAnswer {
			return r.resolveWithProvider(ctx, provider, name)
		})
	}

	addrs := make(map[string]struct{})
	cnames := make(map[string]struct{})
	for _, answer := range answers.Wait() {
		for _, a := range answer.addrs {
			addrs[a] = struct{}{}
		}
		for _, c := range answer.cnames {
			cnames[c] = struct{}{}
		}
	}

	if len(cnames) > 0 {
		followups := pool.NewWithResults[[]string]()
		for target := range cnames {
			for _, provider := range r.options.Providers {
				followups.Go(func() []string {
					return r.addresses(ctx, provider, target)
				})
			}
		}
		for _, res := range followups.Wait() {
			for _, a := range res {
				addrs[a] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(addrs))
	for a := range addrs {
		out = append(out, a)
	}
	slices.Sort(out)

	if len(out) == 0 {
		logger.Warn(ctx, "domain did not resolve with any provider")
	}

	return out
}

// resolveWithProvider runs the A, AAAA and CNAME chain lookups of one
// provider in parallel.
func (r *Resolver) resolveWithProvider(ctx context.Context, provider Provider, name string) providerAnswer {
	var answer providerAnswer

	lookups := pool.New()
	lookups.Go(func() {
		answer.cnames = r.cnameChain(ctx, provider, name)
	})
	answer.addrs = r.addresses(ctx, provider, name)
	lookups.Wait()

	return answer
}

// addresses queries A and AAAA records of name in parallel.
func (r *Resolver) addresses(ctx context.Context, provider Provider, name string) []string {
	lookups := pool.NewWithResults[[]string]()
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		lookups.Go(func() []string {
			return r.query(ctx, provider, name, qtype)
		})
	}

	return slices.Concat(lookups.Wait()...)
}

// cnameChain follows CNAME records from name, at most CNAMEMaxDepth hops,
// stopping at the first loop.
func (r *Resolver) cnameChain(ctx context.Context, provider Provider, name string) []string {
	var chain []string
	seen := map[string]struct{}{strings.ToLower(name): {}}
	current := name
	for range r.options.CNAMEMaxDepth {
		targets := r.query(ctx, provider, current, dns.TypeCNAME)
		if len(targets) == 0 {
			break
		}

		next := targets[0]
		if _, ok := seen[strings.ToLower(next)]; ok {
			break
		}
		seen[strings.ToLower(next)] = struct{}{}
		chain = append(chain, next)
		current = next
	}

	return chain
}

func (r *Resolver) query(ctx context.Context, provider Provider, name string, qtype uint16) []string {
	if r.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.options.Timeout)
		defer cancel()
	}

	res, err := r.querier.Query(ctx, provider.Servers, name, qtype)
	if err != nil {
		logger.Debug(ctx, "dns query failed",
			zap.String("provider", provider.Name),
			zap.String("type", dns.TypeToString[qtype]),
			zap.Error(err))

		return nil
	}

	return res
}

// ResolveTargets expands a target configuration into host/port pairs.
//
// Domains come first. When private addresses are blocked, only public
// addresses of a domain are used and a domain that does not resolve is
// dropped. Otherwise a domain that does not resolve is kept as a raw hostname
// so the dialer can try its own resolution. Domain targets carry the domain as
// SNI. IP ranges are expanded with ExpandCIDR, capped at the policy's MaxIPs.
func (r *Resolver) ResolveTargets(ctx context.Context,
	target domain.TargetConfig,
	hasGateway bool) (Resolution, error) {
	limits := r.options.Policy.Limits
	ports := ParsePorts(target.Ports, limits.MaxPorts)
	blockPrivate := r.options.Policy.BlockPrivate(hasGateway)

	var res Resolution
	addTargets := func(hosts []string, resolved bool, original, sni string) {
		for _, host := range hosts {
			for _, port := range ports {
				res.Targets = append(res.Targets, domain.ScanTarget{
					Host:           host,
					Port:           port,
					IsResolved:     resolved,
					OriginalTarget: original,
					SNIHostname:    sni,
				})
			}
		}
	}
	allowed := func(addrs []string) []string {
		if !blockPrivate {
			return addrs
		}

		out := make([]string, 0, len(addrs))
		for _, a := range addrs {
			if IsPrivateAddr(a) {
				res.FilteredPrivate++

				continue
			}
			out = append(out, a)
		}

		return out
	}

	for _, name := range nonEmpty(target.Domains) {
		addrs := r.ResolveDomain(ctx, name)
		if err := ctx.Err(); err != nil {
			return Resolution{}, fmt.Errorf("could not resolve %s: %w", name, err)
		}

		if len(addrs) == 0 {
			res.Unresolved = append(res.Unresolved, name)
			if !blockPrivate {
				addTargets([]string{name}, false, name, name)
			}

			continue
		}

		addTargets(allowed(addrs), true, name, name)
	}

	for _, ipRange := range nonEmpty(target.IPRanges) {
		hosts := []string{ipRange}
		if strings.Contains(ipRange, "/") {
			hosts = ExpandCIDR(ipRange, limits.MaxIPs)
		}
		addTargets(allowed(hosts), true, ipRange, "")
	}

	if res.FilteredPrivate > 0 {
		logger.Info(ctx, "private addresses excluded from scan", zap.Int("count", res.FilteredPrivate))
	}

	return res, nil
}
