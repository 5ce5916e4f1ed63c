// Package config loads, normalizes, and validates reelpick configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML from
// an explicit --config path, ~/.config/reelpick/config.toml, or ./reelpick.toml
// in that order. Obtain settings through this package so downstream code
// receives sanitized paths and validated bounds.
package config
