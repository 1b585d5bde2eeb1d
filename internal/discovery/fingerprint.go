package discovery

import (
	"crypto/sha256"
	"encoding/hex"
	"pkidiscovery/pkg/domain"
	"strconv"
	"strings"
)

// ComputeLocationFingerprint returns the stable identity of an installation
// location: the lowercase hex SHA-256 of its type and the present detail
// fields joined with "|". Equal inputs always produce equal fingerprints.
func ComputeLocationFingerprint(
	locationType domain.LocationType,
	details domain.LocationDetails,
	gatewayID *domain.GatewayID) string {
	parts := []string{string(locationType)}
	if details.IPAddress != "" {
		parts = append(parts, "ip:"+details.IPAddress)
	}
	if details.FQDN != "" {
		parts = append(parts, "fqdn:"+details.FQDN)
	}
	if details.Port > 0 {
		parts = append(parts, "port:"+strconv.Itoa(details.Port))
	}
	if details.FilePath != "" {
		parts = append(parts, "path:"+details.FilePath)
	}
	if gatewayID != nil {
		parts = append(parts, "gw:"+gatewayID.String())
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))

	return hex.EncodeToString(sum[:])
}
