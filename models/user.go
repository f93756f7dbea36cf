package models

import "time"

// User represents a registered account. Usernames are unique under
// case-insensitive comparison; the database enforces this with a unique
// index on LOWER(username).
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the login identifier chosen at registration.
	// It is stored as submitted but compared case-insensitively.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
