// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

// Package blob stores uploaded asset payloads. Two backends are provided:
// a local directory for single-node deployments and an S3-compatible bucket
// (AWS or MinIO) for everything else.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
)

var (
	// ErrBlobNotFound is returned by Read when the locator resolves to nothing.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrUnknownBackend is returned by New for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown blob storage backend")
)

// Storage persists raw asset payloads. The locator returned by Put is an
// opaque backend-specific string and is what callers should persist.
type Storage interface {
	// Put stores the contents of r under a fresh collision-free name derived
	// from suggestedName. It returns the stored name and the locator.
	Put(ctx context.Context, r io.Reader, suggestedName string) (storedName string, locator string, err error)
	// Exists reports whether the locator still resolves to a stored payload.
	Exists(ctx context.Context, locator string) (bool, error)
	// Read opens the payload at locator. The caller owns the ReadCloser.
	Read(ctx context.Context, locator string) (io.ReadCloser, error)
}

// New builds the Storage selected by cfg.Backend.
func New(cfg config.Blob, log *logger.Logger) (Storage, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStorage(cfg.Dir, log)
	case "s3":
		return NewS3Storage(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

// SanitizeFilename strips every rune that is not a letter, digit, dash,
// underscore, dot or space, so a client-supplied name can never escape the
// storage directory or smuggle path separators into a locator.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == ' ':
			b.WriteRune(r)
		}
	}
	sanitized := strings.TrimSpace(b.String())
	if sanitized == "" || strings.Trim(sanitized, ".") == "" {
		return "unnamed"
	}
	return sanitized
}
