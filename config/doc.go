// Package config loads the service configuration from environment
// variables, with defaults suitable for local development.
package config
