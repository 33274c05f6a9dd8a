package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrEmptyContent         = errors.New("memory content is empty")
	ErrEmptyFilename        = errors.New("asset filename is empty")
	ErrAuthenticationFailed = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrExternalService marks failures of the completion backend.
	ErrExternalService = errors.New("external service failed")

	// ErrAssetFileMissing is returned on download when the database record
	// exists but the stored payload is gone.
	ErrAssetFileMissing = errors.New("asset file is missing from storage")
)

// OrphanBlobError reports an upload whose payload was stored but whose
// database record could not be written. The locator identifies the payload
// so an operator can reclaim it.
type OrphanBlobError struct {
	Locator string
	Err     error
}

func (e *OrphanBlobError) Error() string {
	return fmt.Sprintf("asset record creation failed, stored payload orphaned at %s: %v", e.Locator, e.Err)
}

func (e *OrphanBlobError) Unwrap() error {
	return e.Err
}
