// Package config loads, normalizes, and validates foldersort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and merges extension overrides declared inline.
// Always obtain settings through this package so the CLI receives sanitized
// paths, canonical log formats, and clear validation errors.
package config
