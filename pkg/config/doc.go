// Package config handles configuration management for ansimarkup.
// It layers embedded defaults, an optional TOML or YAML file, ANSIMARKUP_
// environment variables and command-line overrides.
package config
