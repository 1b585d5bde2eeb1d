// Package controller contains the HTTP middlewares and handlers of the
// operational server of the discovery worker.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided handlers:
//   - PprofMux: Exposes net/http/pprof handlers under a path prefix.
//   - Health: Reports the result of dependency checks (database, relay) as JSON.
package controller
