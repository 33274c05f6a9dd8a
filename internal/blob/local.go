// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
)

// LocalStorage keeps payloads as files under a single directory. Stored
// names are prefixed with the upload's unix timestamp so repeated uploads
// of the same file never collide.
type LocalStorage struct {
	dir    string
	logger *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage creates the storage directory if needed.
func NewLocalStorage(dir string, log *logger.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	return &LocalStorage{dir: dir, logger: log, now: time.Now}, nil
}

func (s *LocalStorage) Put(ctx context.Context, r io.Reader, suggestedName string) (string, string, error) {
	storedName := fmt.Sprintf("%d_%s", s.now().Unix(), SanitizeFilename(suggestedName))
	locator := filepath.Join(s.dir, storedName)

	f, err := os.OpenFile(locator, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("error creating blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(locator)
		return "", "", fmt.Errorf("error writing blob file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(locator)
		return "", "", fmt.Errorf("error closing blob file: %w", err)
	}

	s.logger.Debug().Str("locator", locator).Msg("blob stored")

	return storedName, locator, nil
}

func (s *LocalStorage) Exists(ctx context.Context, locator string) (bool, error) {
	_, err := os.Stat(locator)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("error checking blob file: %w", err)
	}
}

func (s *LocalStorage) Read(ctx context.Context, locator string) (io.ReadCloser, error) {
	f, err := os.Open(locator)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, ErrBlobNotFound
	case err != nil:
		return nil, fmt.Errorf("error opening blob file: %w", err)
	}

	return f, nil
}
