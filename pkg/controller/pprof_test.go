package controller_test

import (
	"net/http"
	"net/http/httptest"
	"pkidiscovery/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof/")
	req := httptest.NewRequest(http.MethodGet, "http://ops.local/debug/pprof/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_NamedProfile(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	req := httptest.NewRequest(http.MethodGet, "http://ops.local/debug/pprof/goroutine?debug=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Result().StatusCode)
	require.Contains(t, rec.Body.String(), "goroutine")
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")
	req := httptest.NewRequest(http.MethodGet, "http://ops.local/cmdline", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Result().StatusCode)
}
