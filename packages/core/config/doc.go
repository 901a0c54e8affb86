// Package config handles configuration loading and management for graphspec.
//
// It provides functionality for:
//   - Loading configuration from .graphspec.yaml or graphspec.yaml files
//   - Default configuration values
//   - ${VAR} expansion for credentials
package config
