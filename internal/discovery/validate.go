package discovery

import (
	"net/netip"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/serrors"
	"strings"
)

// TargetSummary describes a valid target configuration.
type TargetSummary struct {
	// IPCount is the number of addresses covered by the IP ranges (the full
	// block size for a CIDR). Domains are not counted.
	IPCount int
	// Ports are the parsed ports.
	Ports []int
}

// ValidateTargetConfig checks a target configuration against the policy
// limits and the private address rules. Violations are returned as
// serrors.ErrBadRequest errors with a user-facing message.
func ValidateTargetConfig(target domain.TargetConfig, hasGateway bool, policy Policy) (TargetSummary, error) {
	limits := policy.Limits

	if strings.TrimSpace(target.Ports) == "" {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "Ports are required")
	}
	ports := ParsePorts(target.Ports, limits.MaxPorts+1)
	if len(ports) == 0 {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "No valid ports specified")
	}
	if len(ports) > limits.MaxPorts {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "Maximum %d ports allowed", limits.MaxPorts)
	}

	ipRanges := nonEmpty(target.IPRanges)
	domains := nonEmpty(target.Domains)
	if len(ipRanges) == 0 && len(domains) == 0 {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "At least one IP range or domain is required")
	}

	for _, d := range domains {
		if strings.Contains(d, "*") {
			return TargetSummary{}, serrors.With(serrors.ErrBadRequest,
				"Wildcard domains are not supported. Please enter specific domain names.")
		}
	}
	if len(domains) > limits.MaxDomains {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest,
			"Maximum %d domains allowed per discovery", limits.MaxDomains)
	}

	if len(ipRanges) == 0 {
		return TargetSummary{Ports: ports}, nil
	}

	var cidrs int
	for _, r := range ipRanges {
		if strings.Contains(r, "/") {
			cidrs++
		}
	}
	if cidrs > 0 && cidrs < len(ipRanges) {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest,
			"Cannot mix CIDR ranges with individual IPs. Use one or the other.")
	}
	if cidrs > 1 {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "Only one CIDR range allowed per discovery job")
	}

	blockPrivate := policy.BlockPrivate(hasGateway)

	if cidrs == 1 {
		count, err := validateCIDR(ipRanges[0], blockPrivate, limits)
		if err != nil {
			return TargetSummary{}, err
		}

		return TargetSummary{IPCount: count, Ports: ports}, nil
	}

	for _, ip := range ipRanges {
		if blockPrivate && IsPrivateAddr(ip) {
			return TargetSummary{}, serrors.With(serrors.ErrBadRequest,
				"Private/internal IP addresses require a gateway. Use a gateway to scan private networks.")
		}
		if !IsIP(ip) {
			return TargetSummary{}, serrors.With(serrors.ErrBadRequest, "Invalid IP address: %s", ip)
		}
	}
	if len(ipRanges) > limits.MaxIPs {
		return TargetSummary{}, serrors.With(serrors.ErrBadRequest,
			"Maximum %d individual IPs allowed", limits.MaxIPs)
	}

	return TargetSummary{IPCount: len(ipRanges), Ports: ports}, nil
}

func validateCIDR(cidr string, blockPrivate bool, limits Limits) (int, error) {
	base, _, _ := strings.Cut(cidr, "/")
	if blockPrivate && IsPrivateAddr(base) {
		return 0, serrors.With(serrors.ErrBadRequest,
			"Private/internal CIDR ranges require a gateway. Use a gateway to scan private networks.")
	}

	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "Invalid CIDR notation: %s", cidr)
	}

	bits := prefix.Addr().BitLen()
	minPrefix := limits.MinCIDRPrefix + (bits - 32)
	if prefix.Bits() < minPrefix {
		return 0, serrors.With(serrors.ErrBadRequest,
			"CIDR range too large. Maximum is /%d (%d IPs). Got /%d",
			minPrefix, blockSize(bits, minPrefix), prefix.Bits())
	}

	return blockSize(bits, prefix.Bits()), nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
