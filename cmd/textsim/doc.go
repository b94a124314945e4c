// Package main hosts the textsim CLI entrypoint and command graph.
//
// The Cobra command tree scores text pairs (compare), prints term-frequency
// tables (vectorize), runs the built-in sample comparison (demo), runs the
// HTTP service in the foreground (serve), and scaffolds configuration
// (config init, config validate). Configuration and logger construction are
// centralized in commandContext so subcommands only deal with their output.
package main
