// Package api sits between the transports (HTTP daemon, CLI) and the
// similarity engine in textutil.
//
// # Key Types
//
// SimilarityService: scores text pairs, caching vectorized texts in an LRU
// so repeated HTTP inputs skip tokenization.
//
// CompareResponse, VectorizeResponse, DemoResult, StatusResponse: wire
// payloads shared by the HTTP status route and the CLI --json output.
//
// # Formatting
//
// FormatScore renders scores the way the service has always returned them:
// the -1 sentinel stays "-1", whole numbers keep a trailing ".0", and other
// values use the shortest representation after rounding.
package api
