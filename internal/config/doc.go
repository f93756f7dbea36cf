// Package config loads and merges the application configuration from a .env
// file, environment variables, command-line flags, and built-in defaults,
// then validates the result before startup proceeds.
package config
