package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"pkidiscovery/pkg/logger"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// HealthCheck checks a single dependency.
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type checkResult struct {
	name string
	err  error
}

// Health returns a handler running every check concurrently within timeout.
// It answers 200 when all checks pass and 503 otherwise.
func Health(timeout time.Duration, checks map[string]HealthCheck) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		p := pool.NewWithResults[checkResult]()
		for _, name := range names {
			check := checks[name]
			p.Go(func() checkResult {
				return checkResult{name: name, err: check(ctx)}
			})
		}

		res := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
		status := http.StatusOK
		for _, c := range p.Wait() {
			if c.err != nil {
				logger.Warn(ctx, "health check failed", zap.String("check", c.name), zap.Error(c.err))
				res.Checks[c.name] = c.err.Error()
				res.Status = "unavailable"
				status = http.StatusServiceUnavailable

				continue
			}
			res.Checks[c.name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	})
}
