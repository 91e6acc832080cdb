// Package config loads, normalizes, and validates vidsync configuration.
//
// Configuration is TOML with a small surface: filesystem paths, external tool
// binaries, fuzzy matching thresholds, and logging. Load applies defaults for
// anything the file omits, expands ~ in paths, and rejects values the engine
// cannot run with.
package config
