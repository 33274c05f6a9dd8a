// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

// Package credstore implements the durable credential store: a YAML file
// mapping usernames to display name, email and bcrypt password hash, plus
// the session cookie parameters (name, signing key, expiry window).
//
// The store is safe for concurrent use from multiple sessions. All writes
// go through an atomic temp-file rename so a crashed save never leaves a
// truncated credential file behind.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Record is a single credential entry. Password always holds the bcrypt
// hash string, never plaintext.
type Record struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Cookie holds the session cookie parameters persisted alongside the
// credentials.
type Cookie struct {
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	ExpiresDays int    `yaml:"expires_days"`
}

// fileFormat is the on-disk YAML layout:
//
//	credentials:
//	  users:
//	    <username>: {name, email, password}
//	cookie:
//	  name: ...
//	  key: ...
//	  expires_days: ...
type fileFormat struct {
	Credentials struct {
		Users map[string]Record `yaml:"users"`
	} `yaml:"credentials"`
	Cookie Cookie `yaml:"cookie"`
}

// Store is the in-process handle to the credential file.
type Store struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	users  map[string]Record
	cookie Cookie
}

// Load opens (or initialises) the credential store at cfg.FilePath.
//
// When the file does not exist, a fresh store is created with the cookie
// parameters from cfg; in that case cfg.CookieKey must be non-empty or Load
// fails with [ErrNoSigningKey] — the store never invents a signing key and
// never falls back to a hardcoded default.
//
// When the file exists, its cookie section wins; configuration only fills
// gaps (a file written before a key rotation may carry an empty key).
func Load(cfg config.Credentials, log *logger.Logger) (*Store, error) {
	s := &Store{
		path:   cfg.FilePath,
		logger: log,
		users:  make(map[string]Record),
		cookie: Cookie{
			Name:        cfg.CookieName,
			Key:         cfg.CookieKey,
			ExpiresDays: cfg.ExpiresDays,
		},
	}

	data, err := os.ReadFile(cfg.FilePath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if cfg.CookieKey == "" {
			return nil, ErrNoSigningKey
		}
		if saveErr := s.save(); saveErr != nil {
			return nil, fmt.Errorf("error initialising credential file: %w", saveErr)
		}
		log.Info().Str("path", cfg.FilePath).Msg("credential file created")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("error reading credential file: %w", err)
	}

	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding credential file: %w", err)
	}

	if file.Credentials.Users != nil {
		s.users = file.Credentials.Users
	}
	if file.Cookie.Name != "" {
		s.cookie.Name = file.Cookie.Name
	}
	if file.Cookie.Key != "" {
		s.cookie.Key = file.Cookie.Key
	}
	if file.Cookie.ExpiresDays > 0 {
		s.cookie.ExpiresDays = file.Cookie.ExpiresDays
	}

	if s.cookie.Key == "" {
		return nil, ErrNoSigningKey
	}

	return s, nil
}

// Register hashes the plaintext password with bcrypt and persists a new
// credential entry. The username check is a case-sensitive exact match.
//
// Returns the stored record (including the hash) or:
//   - [ErrDuplicateUsername] if the username is already present.
//   - A wrapped error if hashing or the file write fails; a failed write
//     rolls the in-memory entry back so the store and the file stay in sync.
func (s *Store) Register(username, name, email, password string) (Record, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Record{}, fmt.Errorf("error hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return Record{}, ErrDuplicateUsername
	}

	record := Record{Name: name, Email: email, Password: string(hash)}
	s.users[username] = record

	if err := s.save(); err != nil {
		delete(s.users, username)
		return Record{}, fmt.Errorf("error persisting credential file: %w", err)
	}

	return record, nil
}

// Verify checks the plaintext password against the stored bcrypt hash.
// The comparison is constant-time by construction of
// bcrypt.CompareHashAndPassword. The record is returned on success so
// callers can reconcile the persistence layer without a second lookup.
func (s *Store) Verify(username, password string) (bool, Record) {
	s.mu.RLock()
	record, exists := s.users[username]
	s.mu.RUnlock()

	if !exists {
		return false, Record{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.Password), []byte(password)); err != nil {
		return false, Record{}
	}

	return true, record
}

// Find returns the credential record for username without verifying a
// password. Used by the reconciliation step on login.
func (s *Store) Find(username string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.users[username]
	return record, exists
}

// Remove deletes a credential entry and persists the change. Used to roll
// back a half-finished registration and by account deletion.
// Returns [ErrUnknownUsername] when the entry does not exist.
func (s *Store) Remove(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.users[username]
	if !exists {
		return ErrUnknownUsername
	}

	delete(s.users, username)

	if err := s.save(); err != nil {
		s.users[username] = record
		return fmt.Errorf("error persisting credential file: %w", err)
	}

	return nil
}

// CookieName returns the configured session cookie name.
func (s *Store) CookieName() string {
	return s.cookie.Name
}

// SigningKey returns the session token signing key.
func (s *Store) SigningKey() string {
	return s.cookie.Key
}

// Expiry returns the session validity window as a duration.
func (s *Store) Expiry() time.Duration {
	return time.Duration(s.cookie.ExpiresDays) * 24 * time.Hour
}

// save writes the current state to disk atomically. Callers must hold mu.
func (s *Store) save() error {
	var file fileFormat
	file.Credentials.Users = s.users
	file.Cookie = s.cookie

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("error encoding credential file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("error creating credential directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("error replacing credential file: %w", err)
	}

	return nil
}
