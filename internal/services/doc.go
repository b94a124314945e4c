// Package services defines shared helpers consumed by the HTTP daemon, the
// similarity service and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp request correlation identifiers and
//     operation names for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent HTTP statuses.
package services
