// Package config loads, validates, and normalizes the kinolog configuration
// file. Configuration is TOML, defaults to ~/.config/kinolog/config.toml,
// and every path field is tilde-expanded and made absolute during Load.
package config
