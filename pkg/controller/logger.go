package controller

import (
	"context"
	"net"
	"net/http"
	"pkidiscovery/pkg/logger"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusRecorder wraps http.ResponseWriter to capture the final HTTP status
// code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

// WriteHeader records the status code and forwards the call to the underlying writer.
func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP returns the originating client IP of r, preferring the
// X-Forwarded-For and X-Real-IP headers over the connection address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// "client, proxy1, proxy2"
		client, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(client)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// WithLogger returns a middleware that injects a request-scoped logger and
// request ID into the context, then logs a structured access log after the
// handler finishes. Requests to quietPaths, typically scrapes and health checks,
// are logged at debug level unless they fail.
func WithLogger(next http.Handler, quietPaths ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		log := logger.Info
		if rec.status < http.StatusInternalServerError && slices.Contains(quietPaths, r.URL.Path) {
			log = logger.Debug
		}
		log(ctx, "access log",
			zap.Int("status_code", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("url", r.URL.String()),
			zap.String("method", r.Method),
		)
	})
}
