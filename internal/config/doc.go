// Package config loads and validates cuepress configuration from a
// TOML file, applying defaults and normalizing paths. Command-line
// flags override file values after Load returns.
package config
