package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"pkidiscovery/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pkidiscovery/pkg/logger"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{name: "forwarded for", header: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", header: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			if tc.remote != "" {
				req.RemoteAddr = tc.remote
			}
			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, _ := r.Context().Value(controller.RequestIDKey).(string); s != "" {
			w.Header().Set("X-Echo-Request-Id", s)
		}
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Echo-Request-Id"))

	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Echo-Request-Id"))
}

func TestWithLogger_QuietPathsLogAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	fail := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	serve := func(h http.Handler, path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
		controller.WithLogger(h, "/metrics", "/healthz").ServeHTTP(httptest.NewRecorder(), req)
	}
	serve(ok, "/metrics")
	serve(ok, "/debug/pprof/")
	serve(fail, "/healthz")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zap.DebugLevel, entries[0].Level)
	require.Equal(t, zap.InfoLevel, entries[1].Level)
	require.Equal(t, zap.InfoLevel, entries[2].Level)
}
