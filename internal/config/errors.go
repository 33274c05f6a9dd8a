package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, unknown driver, or unknown blob backend).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCredentialsConfigs indicates invalid credential store or
	// session cookie settings (for example, missing cookie name or a
	// non-positive expiry window).
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
)
