package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pkidiscovery/pkg/controller"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]controller.HealthCheck
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "all healthy",
			checks:     map[string]controller.HealthCheck{"postgres": ok},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"status": "ok", "checks": map[string]any{"postgres": "ok"}},
		},
		{
			name:       "one failing",
			checks:     map[string]controller.HealthCheck{"postgres": ok, "relay": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody: map[string]any{
				"status": "unavailable",
				"checks": map[string]any{"postgres": "ok", "relay": "connection refused"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			controller.Health(time.Second, tc.checks).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.wantBody, body)
		})
	}
}

func TestHealth_CheckSeesDeadline(t *testing.T) {
	slow := func(ctx context.Context) error {
		<-ctx.Done()

		return ctx.Err()
	}

	rec := httptest.NewRecorder()
	controller.Health(10*time.Millisecond, map[string]controller.HealthCheck{"slow": slow}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
