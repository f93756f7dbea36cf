package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username (compared case-insensitively)
	// already exists in the database.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNoUserWasFound is returned when a user lookup by username produces
	// an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a catalog lookup by ISBN matches no row.
	ErrBookNotFound = errors.New("book was not found")

	// ErrUnknownSearchField is returned when a search targets a field outside
	// the closed column allow-list.
	ErrUnknownSearchField = errors.New("unknown search field")
)
