package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The database connection string and the rating service API key are both
// required collaborator credentials: the process refuses to start without
// either of them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrDatabaseURLNotSet
	}

	if cfg.Ratings.APIKey == "" {
		return ErrAPIKeyNotSet
	}

	return nil
}
