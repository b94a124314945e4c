// Package daemon runs the textsim HTTP service as a long-lived process.
//
// It wires configuration, the cached similarity service, and the HTTP API
// server into a single lifecycle with flock-based locking so only one
// instance binds a given state directory. Every request is tagged with a
// correlation ID that is echoed in the X-Request-ID header and attached to
// log lines.
//
// Routes:
//
//	GET  /                     informational HTML page
//	POST /text_similarity/api  score text1 and text2 query parameters
//	GET  /api/status           daemon and cache status as JSON
package daemon
