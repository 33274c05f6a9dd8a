// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/credstore"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
	"github.com/dkuznetsov/legacy-keeper/internal/utils"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// authService is the concrete implementation of AuthService.
//
// Credentials live in two places with distinct roles: the credential file
// store holds username, display name, email and the bcrypt password hash
// and is the authority for authentication; the database holds the user row
// that memories and assets reference. Registration writes both, login
// verifies against the file store and reconciles the database row.
type authService struct {
	// credentials is the authoritative credential file store.
	credentials CredentialStore

	// userRepository is the data-access layer for the users table.
	userRepository store.UserRepository

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the credential store and
// the user repository. The token signing key and validity window come from
// the credential store's cookie section; only the issuer comes from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(credentials CredentialStore, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentials:    credentials,
		userRepository: userRepository,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// Register creates a new account in both credential stores.
//
// The credential file is written first: it is the uniqueness gate, and a
// duplicate there fails the whole registration before anything else
// happens. The database row is written second; if that write fails the
// credential entry is removed again so a retry starts clean.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username, name or password is empty.
//   - credstore.ErrDuplicateUsername (wrapped) if the username is taken.
//   - A wrapped storage error if the database write fails.
func (a *authService) Register(ctx context.Context, username, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || name == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	record, err := a.credentials.Register(username, name, email, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("credential registration failed")
		return models.User{}, fmt.Errorf("credential registration failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       username,
		Name:           name,
		Email:          email,
		HashedPassword: record.Password,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")

		if removeErr := a.credentials.Remove(username); removeErr != nil {
			log.Err(removeErr).Str("username", username).Msg("credential rollback failed")
			return models.User{}, fmt.Errorf("user creation ended with error: %w (credential rollback failed: %w)", err, removeErr)
		}

		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// Verification runs against the credential file store only. A verified user
// missing from the database (an entry added to the file by hand, or a row
// lost to a reset) is re-created on the spot; when that reconciliation
// fails the login still succeeds and the failure is reported through
// LoginResult.ReconcileErr.
//
// Returns ErrInvalidDataProvided for empty input and
// ErrAuthenticationFailed when the username or password is wrong — the two
// cases are deliberately indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return LoginResult{}, ErrInvalidDataProvided
	}

	ok, record := a.credentials.Verify(username, password)
	if !ok {
		log.Info().Str("username", username).Msg("authentication failed")
		return LoginResult{}, ErrAuthenticationFailed
	}

	result := LoginResult{}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		user, err = a.userRepository.CreateUser(ctx, models.User{
			Username:       username,
			Name:           record.Name,
			Email:          record.Email,
			HashedPassword: record.Password,
		})
		if err != nil {
			log.Err(err).Str("username", username).Msg("user reconciliation failed")
			result.ReconcileErr = fmt.Errorf("user reconciliation failed: %w", err)
		}
	case err != nil:
		log.Err(err).Str("username", username).Msg("user search by username failed")
		result.ReconcileErr = fmt.Errorf("user search by username failed: %w", err)
	}
	result.User = user

	token, err := utils.GenerateSessionToken(a.tokenIssuer, username, record.Name, a.credentials.Expiry(), a.credentials.SigningKey())
	if err != nil {
		log.Err(err).Str("username", username).Msg("session token creation failed")
		return LoginResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	result.Token = token

	return result, nil
}

// ParseToken validates and parses a raw session token string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.credentials.SigningKey(), a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Session returns the database user for an authenticated username.
func (a *authService) Session(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// DeleteAccount removes the credential entry and the database row. The
// credential entry goes first so further logins stop immediately; the
// database delete cascades to the user's memories and assets.
//
// A user present in only one of the two stores is still deleted from the
// other, so the operation is usable to clean up a half-registered account.
func (a *authService) DeleteAccount(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}

	credErr := a.credentials.Remove(username)
	if credErr != nil && !errors.Is(credErr, credstore.ErrUnknownUsername) {
		log.Err(credErr).Str("username", username).Msg("credential removal failed")
		return fmt.Errorf("credential removal failed: %w", credErr)
	}

	dbErr := a.userRepository.DeleteUser(ctx, username)
	switch {
	case errors.Is(dbErr, store.ErrUserNotFound):
		// Nothing in the database; fine unless the credential entry was
		// missing too.
		if credErr != nil {
			return fmt.Errorf("user deletion failed: %w", store.ErrUserNotFound)
		}
	case dbErr != nil:
		log.Err(dbErr).Str("username", username).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", dbErr)
	}

	log.Info().Str("username", username).Msg("account deleted")

	return nil
}
