package models

import "time"

// User represents an account entity stored in the persistence layer.
// It mirrors the credential store's record for the same username and is
// reconciled with it on login (see the auth service).
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, immutable login identifier and the primary
	// lookup key for all record operations.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is free text. It is neither validated nor unique.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is copied from the
	// credential store and never exposed via JSON.
	HashedPassword string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Server-assigned, set once.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
