// Package logging assembles the slog loggers shared by the textsim CLI and
// HTTP service.
//
// It owns the console and JSON handlers, parses levels from configuration,
// and fans output out to stdout and an optional log file. Context helpers tag
// log lines with the running operation and the request correlation ID so a
// single HTTP request can be followed through the service.
package logging
