package config

import "errors"

var (
	// ErrDatabaseURLNotSet is returned when no database connection string
	// was supplied by any configuration source.
	ErrDatabaseURLNotSet = errors.New("DATABASE_URL is not set")

	// ErrAPIKeyNotSet is returned when no rating service API key was
	// supplied by any configuration source.
	ErrAPIKeyNotSet = errors.New("API_KEY is not set")
)
