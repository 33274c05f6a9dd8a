package credstore

import "errors"

var (
	// ErrNoSigningKey is returned by Load when neither the credential file
	// nor the configuration carries a session signing key. The server must
	// refuse to start rather than sign tokens with a guessable default.
	ErrNoSigningKey = errors.New("no session signing key configured")

	// ErrDuplicateUsername is returned by Register for an exact-match
	// username collision.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrUnknownUsername is returned by Remove when no such entry exists.
	ErrUnknownUsername = errors.New("unknown username")
)
