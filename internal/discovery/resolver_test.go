package discovery_test

import (
	"context"
	"errors"
	"pkidiscovery/internal/discovery"
	"pkidiscovery/pkg/domain"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// fakeQuerier answers from a static table keyed by "server|type|name".
// A server prefix "*" matches every provider.
type fakeQuerier struct {
	mu      sync.Mutex
	answers map[string][]string
	calls   []string
	fail    map[string]bool
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{answers: map[string][]string{}, fail: map[string]bool{}}
}

func (f *fakeQuerier) set(server string, qtype uint16, name string, values ...string) {
	f.answers[server+"|"+dns.TypeToString[qtype]+"|"+name] = values
}

func (f *fakeQuerier) Query(_ context.Context, servers []string, name string, qtype uint16) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	server := servers[0]
	f.calls = append(f.calls, server+"|"+dns.TypeToString[qtype]+"|"+name)
	if f.fail[server] {
		return nil, errors.New("i/o timeout")
	}
	if v, ok := f.answers[server+"|"+dns.TypeToString[qtype]+"|"+name]; ok {
		return v, nil
	}

	return f.answers["*|"+dns.TypeToString[qtype]+"|"+name], nil
}

var testProviders = []discovery.Provider{ //nolint: gochecknoglobals
	{Name: "one", Servers: []string{"ns1"}},
	{Name: "two", Servers: []string{"ns2"}},
}

func newTestResolver(q discovery.Querier, allowInternal bool) *discovery.Resolver {
	return discovery.NewResolver(q, discovery.Options{
		Policy: discovery.Policy{
			Limits:                   discovery.DefaultLimits,
			AllowInternalConnections: allowInternal,
		},
		Providers:     testProviders,
		Timeout:       time.Second,
		CNAMEMaxDepth: 10,
	})
}

func TestResolver_ResolveDomain_UnionAcrossProviders(t *testing.T) {
	q := newFakeQuerier()
	q.set("ns1", dns.TypeA, "example.com", "203.0.113.10")
	q.set("ns2", dns.TypeA, "example.com", "203.0.113.20", "203.0.113.10")
	q.set("ns2", dns.TypeAAAA, "example.com", "2001:db8::10")

	addrs := newTestResolver(q, false).ResolveDomain(context.Background(), "example.com")
	require.Equal(t, []string{"2001:db8::10", "203.0.113.10", "203.0.113.20"}, addrs)
}

func TestResolver_ResolveDomain_FollowsCNAMEs(t *testing.T) {
	q := newFakeQuerier()
	q.set("*", dns.TypeCNAME, "www.example.com", "edge.cdn.net")
	q.set("*", dns.TypeCNAME, "edge.cdn.net", "pop1.cdn.net")
	q.set("ns1", dns.TypeA, "pop1.cdn.net", "198.51.100.7")
	q.set("ns2", dns.TypeA, "edge.cdn.net", "198.51.100.8")

	addrs := newTestResolver(q, false).ResolveDomain(context.Background(), "www.example.com")
	require.Equal(t, []string{"198.51.100.7", "198.51.100.8"}, addrs)
}

func TestResolver_ResolveDomain_CNAMELoopStops(t *testing.T) {
	q := newFakeQuerier()
	q.set("*", dns.TypeCNAME, "a.example.com", "b.example.com")
	q.set("*", dns.TypeCNAME, "b.example.com", "a.example.com")

	addrs := newTestResolver(q, false).ResolveDomain(context.Background(), "a.example.com")
	require.Empty(t, addrs)

	var cnameQueries int
	for _, c := range q.calls {
		if strings.Contains(c, "|CNAME|") {
			cnameQueries++
		}
	}
	// two hops per provider before the loop is detected
	require.Equal(t, 4, cnameQueries)
}

func TestResolver_ResolveDomain_ProviderErrorIsEmptyAnswer(t *testing.T) {
	q := newFakeQuerier()
	q.fail["ns1"] = true
	q.set("ns2", dns.TypeA, "example.com", "203.0.113.10")

	addrs := newTestResolver(q, false).ResolveDomain(context.Background(), "example.com")
	require.Equal(t, []string{"203.0.113.10"}, addrs)
}

func TestResolver_ResolveTargets(t *testing.T) {
	q := newFakeQuerier()
	q.set("*", dns.TypeA, "mixed.example.com", "203.0.113.10", "10.0.0.5")
	q.set("*", dns.TypeA, "internal.example.com", "192.168.1.20")

	target := domain.TargetConfig{
		Domains:  []string{"mixed.example.com", "internal.example.com", "missing.example.com"},
		IPRanges: []string{"198.51.100.0/30"},
		Ports:    "443, 8443",
	}

	t.Run("blocking private addresses", func(t *testing.T) {
		res, err := newTestResolver(q, false).ResolveTargets(context.Background(), target, false)
		require.NoError(t, err)
		require.Equal(t, 2, res.FilteredPrivate)
		require.Equal(t, []string{"missing.example.com"}, res.Unresolved)

		require.Equal(t, []domain.ScanTarget{
			{Host: "203.0.113.10", Port: 443, IsResolved: true,
				OriginalTarget: "mixed.example.com", SNIHostname: "mixed.example.com"},
			{Host: "203.0.113.10", Port: 8443, IsResolved: true,
				OriginalTarget: "mixed.example.com", SNIHostname: "mixed.example.com"},
			{Host: "198.51.100.1", Port: 443, IsResolved: true, OriginalTarget: "198.51.100.0/30"},
			{Host: "198.51.100.1", Port: 8443, IsResolved: true, OriginalTarget: "198.51.100.0/30"},
			{Host: "198.51.100.2", Port: 443, IsResolved: true, OriginalTarget: "198.51.100.0/30"},
			{Host: "198.51.100.2", Port: 8443, IsResolved: true, OriginalTarget: "198.51.100.0/30"},
		}, res.Targets)

		for _, tgt := range res.Targets {
			require.False(t, discovery.IsPrivateAddr(tgt.Host))
			require.NotEqual(t, "missing.example.com", tgt.Host)
		}
	})

	t.Run("gateway keeps private and unresolved hosts", func(t *testing.T) {
		res, err := newTestResolver(q, false).ResolveTargets(context.Background(), target, true)
		require.NoError(t, err)
		require.Zero(t, res.FilteredPrivate)

		hosts := map[string]bool{}
		for _, tgt := range res.Targets {
			hosts[tgt.Host] = tgt.IsResolved
		}
		require.Contains(t, hosts, "10.0.0.5")
		require.Contains(t, hosts, "192.168.1.20")
		resolved, ok := hosts["missing.example.com"]
		require.True(t, ok)
		require.False(t, resolved)
		require.Len(t, res.Targets, (3+1+2)*2)
	})

	t.Run("allow internal behaves like gateway", func(t *testing.T) {
		res, err := newTestResolver(q, true).ResolveTargets(context.Background(), target, false)
		require.NoError(t, err)
		require.Zero(t, res.FilteredPrivate)
		require.Len(t, res.Targets, 12)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestResolver(q, false).ResolveTargets(ctx, target, false)
		require.ErrorIs(t, err, context.Canceled)
	})
}

// barrierQuerier holds every query until want queries are in flight at once.
type barrierQuerier struct {
	want    int
	mu      sync.Mutex
	waiting int
	release chan struct{}
}

func (b *barrierQuerier) Query(ctx context.Context, _ []string, _ string, qtype uint16) ([]string, error) {
	b.mu.Lock()
	b.waiting++
	if b.waiting == b.want {
		close(b.release)
	}
	b.mu.Unlock()

	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	switch qtype {
	case dns.TypeA:
		return []string{"203.0.113.5"}, nil
	case dns.TypeAAAA:
		return []string{"2001:db8::5"}, nil
	default:
		return nil, nil
	}
}

func TestResolver_ResolveDomain_ProviderLookupsRunInParallel(t *testing.T) {
	q := &barrierQuerier{want: 3, release: make(chan struct{})}
	r := discovery.NewResolver(q, discovery.Options{
		Providers: []discovery.Provider{{Name: "one", Servers: []string{"ns1"}}},
		Timeout:   2 * time.Second,
	})

	// A, AAAA and the first CNAME lookup only complete when issued together
	require.Equal(t, []string{"2001:db8::5", "203.0.113.5"}, r.ResolveDomain(context.Background(), "example.com"))
}
