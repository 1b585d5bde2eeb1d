package discovery

import (
	"net/netip"
	"strings"
)

var (
	sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10") //nolint: gochecknoglobals
	thisNetwork        = netip.MustParsePrefix("0.0.0.0/8")     //nolint: gochecknoglobals
)

// IsPrivateAddr reports whether s is an IP address that must not be reached
// without a gateway: RFC 1918 and ULA ranges, loopback, link-local, shared
// address space and unspecified addresses. Hostnames are never private.
func IsPrivateAddr(s string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	return addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsInterfaceLocalMulticast() ||
		addr.IsUnspecified() ||
		sharedAddressSpace.Contains(addr) ||
		thisNetwork.Contains(addr)
}

// IsIP reports whether s is an IP literal.
func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)

	return err == nil
}

// ExpandCIDR returns the host addresses of the block, at most max of them
// (max <= 0 means no cap). Network and broadcast addresses are skipped for
// IPv4 blocks of /30 and larger. A malformed block is returned as is so the
// caller can still attempt it as a literal host.
func ExpandCIDR(cidr string, max int) []string {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(cidr))
	if err != nil {
		return []string{cidr}
	}
	prefix = prefix.Masked()

	first := prefix.Addr()
	skipEdges := first.Is4() && prefix.Bits() <= 30
	if skipEdges {
		first = first.Next()
	}

	var out []string
	for addr := first; addr.IsValid() && prefix.Contains(addr); addr = addr.Next() {
		if skipEdges && !prefix.Contains(addr.Next()) {
			break // broadcast
		}
		if max > 0 && len(out) >= max {
			break
		}
		out = append(out, addr.String())
	}

	return out
}

// blockSize returns the number of addresses in a prefix of the given length
// for an address family of the given bit width, saturating at 1<<62.
func blockSize(bits, prefixLen int) int {
	shift := bits - prefixLen
	if shift > 62 {
		shift = 62
	}

	return 1 << shift
}
