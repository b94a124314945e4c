// Package config loads, normalizes, and validates textsim configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// TEXTSIM_BIND. The Config type centralizes every knob the HTTP daemon and
// the CLI need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
