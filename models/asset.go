package models

import "time"

// Asset is a reference to a digital artifact owned by a user: either an
// uploaded file backed by blob storage, or a manual entry with no blob.
type Asset struct {
	// ID is assigned by the persistence layer at creation.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"-"`

	// Filename is the display name. Uploaded files are disambiguated with a
	// creation-timestamp prefix; manual entries carry a sanitized name.
	Filename string `json:"filename"`

	// Filepath is the blob storage locator. Empty for manual entries.
	Filepath string `json:"filepath"`

	// Description is free text and may be empty. For uploads with no
	// caller-supplied description it defaults to the AI-generated summary.
	Description string `json:"description"`

	// UploadedAt is server-assigned and drives the default ordering
	// (descending, newest first).
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}
