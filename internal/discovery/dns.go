package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// Provider is a DNS service queried as a single source of truth. Its servers
// are tried in order until one answers.
type Provider struct {
	Name    string
	Servers []string
}

// DefaultProviders are well-known public resolvers. Querying several of them
// catches split-horizon and geo-dependent answers.
var DefaultProviders = []Provider{ //nolint: gochecknoglobals
	{Name: "google", Servers: []string{"8.8.8.8", "8.8.4.4"}},
	{Name: "cloudflare", Servers: []string{"1.1.1.1", "1.0.0.1"}},
	{Name: "quad9", Servers: []string{"9.9.9.9", "149.112.112.112"}},
	{Name: "opendns", Servers: []string{"208.67.222.222", "208.67.220.220"}},
}

// Querier performs a single DNS lookup of the given type against a list of
// servers and returns the answer values: addresses for A/AAAA, target names
// without the trailing dot for CNAME. A name that does not exist yields an
// empty answer and no error.
type Querier interface {
	Query(ctx context.Context, servers []string, name string, qtype uint16) ([]string, error)
}

// DNSQuerier implements Querier over UDP with a TCP retry for truncated answers.
type DNSQuerier struct {
	udp *dns.Client
	tcp *dns.Client
}

// NewDNSQuerier creates a DNSQuerier. Deadlines come from the query context.
func NewDNSQuerier() *DNSQuerier {
	return &DNSQuerier{
		udp: &dns.Client{Net: "udp"},
		tcp: &dns.Client{Net: "tcp"},
	}
}

func (q *DNSQuerier) Query(ctx context.Context, servers []string, name string, qtype uint16) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	var lastErr error
	for _, server := range servers {
		addr := serverAddr(server)

		in, _, err := q.udp.ExchangeContext(ctx, msg, addr)
		if err == nil && in.Truncated {
			in, _, err = q.tcp.ExchangeContext(ctx, msg, addr)
		}
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}

			continue
		}

		switch in.Rcode {
		case dns.RcodeSuccess:
			return answerValues(in.Answer, qtype), nil
		case dns.RcodeNameError:
			return nil, nil
		default:
			lastErr = fmt.Errorf("%s answered %s", server, dns.RcodeToString[in.Rcode])
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no servers configured")
	}

	return nil, fmt.Errorf("could not query %s %s: %w", dns.TypeToString[qtype], name, lastErr)
}

func answerValues(rrs []dns.RR, qtype uint16) []string {
	var out []string
	for _, rr := range rrs {
		switch v := rr.(type) {
		case *dns.A:
			if qtype == dns.TypeA {
				out = append(out, v.A.String())
			}
		case *dns.AAAA:
			if qtype == dns.TypeAAAA {
				out = append(out, v.AAAA.String())
			}
		case *dns.CNAME:
			if qtype == dns.TypeCNAME {
				out = append(out, strings.TrimSuffix(v.Target, "."))
			}
		}
	}

	return out
}

func serverAddr(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}

	return net.JoinHostPort(server, "53")
}
