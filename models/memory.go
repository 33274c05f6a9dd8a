package models

import "time"

// Memory is a single free-text note attributed to a user.
// Memories are immutable after creation; they are removed only when the
// owning user is deleted (cascade).
type Memory struct {
	// ID is assigned by the persistence layer at creation.
	ID int64 `json:"id"`

	// UserID references the owning user. The user must exist at the moment
	// of creation; orphaned memories must not exist outside the
	// cascade-delete window.
	UserID int64 `json:"-"`

	// Content is the non-empty text of the memory.
	Content string `json:"content"`

	// CreatedAt is server-assigned and drives the default ordering
	// (descending, newest first).
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Memory model.
func (m Memory) TableName() string {
	return "memories"
}
