// Package config loads runtime configuration for the settings tool from
// multiple sources (YAML files, environment variables, CLI flags) with
// precedence: CLI flags > Environment variables > YAML config > Defaults.
package config
