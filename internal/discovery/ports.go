package discovery

import (
	"slices"
	"strconv"
	"strings"
)

const maxPort = 65535

// ParsePorts parses a comma separated list of ports and inclusive "a-b"
// ranges. Invalid tokens are skipped, duplicates collapse, and parsing stops
// once max ports were collected (max <= 0 means no cap). The result is sorted.
func ParsePorts(ports string, max int) []int {
	seen := make(map[int]struct{})
	full := func() bool { return max > 0 && len(seen) >= max }

	for _, part := range strings.Split(ports, ",") {
		if full() {
			break
		}

		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			bounds := strings.Split(token, "-")
			if len(bounds) != 2 {
				continue
			}
			start, errStart := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, errEnd := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if errStart != nil || errEnd != nil || start < 1 || end > maxPort || start > end {
				continue
			}
			for p := start; p <= end && !full(); p++ {
				seen[p] = struct{}{}
			}

			continue
		}

		p, err := strconv.Atoi(token)
		if err != nil || p < 1 || p > maxPort {
			continue
		}
		seen[p] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)

	return out
}
