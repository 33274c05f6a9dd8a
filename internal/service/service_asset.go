// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dkuznetsov/legacy-keeper/internal/blob"
	"github.com/dkuznetsov/legacy-keeper/internal/llm"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// assetService is the concrete implementation of AssetService.
//
// An asset is a database record (filename, description, owner) plus an
// optional stored payload. Manual assets carry no payload; uploaded ones
// keep their payload in the blob storage under the record's Filepath
// locator.
type assetService struct {
	assetRepository store.AssetRepository
	userRepository  store.UserRepository
	blobs           blob.Storage
	generator       llm.Generator
	logger          *logger.Logger
}

func NewAssetService(assetRepository store.AssetRepository, userRepository store.UserRepository, blobs blob.Storage, generator llm.Generator, logger *logger.Logger) AssetService {
	return &assetService{
		assetRepository: assetRepository,
		userRepository:  userRepository,
		blobs:           blobs,
		generator:       generator,
		logger:          logger,
	}
}

// AddAsset records an asset without a payload. The name is sanitised the
// same way upload names are, so the catalogue never holds path fragments.
//
// Returns the persisted asset or:
//   - ErrEmptyFilename if the name is blank (before or after sanitising).
//   - A wrapped storage error if the user lookup or the insert fails.
func (s *assetService) AddAsset(ctx context.Context, username, filename, description string) (models.Asset, error) {
	log := logger.FromContext(ctx)

	sanitized := blob.SanitizeFilename(filename)
	if filename == "" || sanitized == "unnamed" {
		log.Error().Str("username", username).Str("filename", filename).Msg("empty asset filename provided")
		return models.Asset{}, ErrEmptyFilename
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Asset{}, fmt.Errorf("user search by username failed: %w", err)
	}

	asset, err := s.assetRepository.CreateAsset(ctx, models.Asset{
		UserID:      user.UserID,
		Filename:    sanitized,
		Description: description,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("asset creation ended with error")
		return models.Asset{}, fmt.Errorf("asset creation ended with error: %w", err)
	}

	return asset, nil
}

// Upload stores a payload and records the asset.
//
// description distinguishes absent from empty: nil asks for a generated
// one-line summary based on the filename, while a pointer to "" keeps the
// description empty on purpose. A summary generation failure never fails
// the upload; a plain fallback description is used and the failure is
// reported in UploadResult.SummaryErr.
//
// The payload write happens before the database insert. When the insert
// then fails the stored payload cannot be rolled back reliably, so the
// failure is reported as an *OrphanBlobError naming the locator.
func (s *assetService) Upload(ctx context.Context, username, filename string, description *string, payload io.Reader) (UploadResult, error) {
	log := logger.FromContext(ctx)

	if filename == "" {
		log.Error().Str("username", username).Msg("empty asset filename provided")
		return UploadResult{}, ErrEmptyFilename
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return UploadResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	storedName, locator, err := s.blobs.Put(ctx, payload, filename)
	if err != nil {
		log.Err(err).Str("username", username).Str("filename", filename).Msg("payload storage failed")
		return UploadResult{}, fmt.Errorf("payload storage failed: %w", err)
	}

	finalDescription := ""
	var summaryErr error
	switch {
	case description != nil:
		finalDescription = *description
	default:
		systemPrompt, userPrompt := llm.SummaryPrompt(filename)
		summary, genErr := s.generator.Generate(ctx, systemPrompt, userPrompt)
		if genErr != nil {
			log.Err(genErr).Str("filename", filename).Msg("summary generation failed, using fallback description")
			summary = fmt.Sprintf("Uploaded file %s", blob.SanitizeFilename(filename))
			summaryErr = fmt.Errorf("%w: %w", ErrExternalService, genErr)
		}
		finalDescription = summary
	}

	asset, err := s.assetRepository.CreateAsset(ctx, models.Asset{
		UserID:      user.UserID,
		Filename:    storedName,
		Filepath:    locator,
		Description: finalDescription,
	})
	if err != nil {
		log.Err(err).Str("username", username).Str("locator", locator).Msg("asset creation ended with error, payload orphaned")
		return UploadResult{}, &OrphanBlobError{Locator: locator, Err: err}
	}

	return UploadResult{Asset: asset, SummaryErr: summaryErr}, nil
}

// ListAssets returns the user's assets, newest first. A non-positive limit
// falls back to defaultListLimit. An unknown username yields an empty
// result, not an error: the catalogue of a user that does not exist is empty.
func (s *assetService) ListAssets(ctx context.Context, username string, limit int) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("listing assets for unknown user")
		return []models.Asset{}, nil
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	assets, err := s.assetRepository.ListAssets(ctx, user.UserID, limit)
	if err != nil {
		log.Err(err).Str("username", username).Msg("asset listing ended with error")
		return nil, fmt.Errorf("asset listing ended with error: %w", err)
	}

	return assets, nil
}

// Download opens the stored payload of one of the user's assets. Ownership
// is enforced by the repository lookup: an asset ID belonging to another
// user yields store.ErrAssetNotFound, indistinguishable from a missing one.
//
// Returns the record plus a reader the caller must close, or:
//   - A wrapped store.ErrAssetNotFound for a foreign or unknown ID.
//   - ErrAssetFileMissing when the record has no payload or the payload is
//     gone from storage.
func (s *assetService) Download(ctx context.Context, username string, assetID int64) (models.Asset, io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Asset{}, nil, fmt.Errorf("user search by username failed: %w", err)
	}

	asset, err := s.assetRepository.GetAsset(ctx, user.UserID, assetID)
	if err != nil {
		log.Err(err).Str("username", username).Int64("assetID", assetID).Msg("asset lookup ended with error")
		return models.Asset{}, nil, fmt.Errorf("asset lookup ended with error: %w", err)
	}

	if asset.Filepath == "" {
		return models.Asset{}, nil, ErrAssetFileMissing
	}

	ok, err := s.blobs.Exists(ctx, asset.Filepath)
	if err != nil {
		log.Err(err).Str("locator", asset.Filepath).Msg("payload existence check failed")
		return models.Asset{}, nil, fmt.Errorf("payload existence check failed: %w", err)
	}
	if !ok {
		log.Error().Str("locator", asset.Filepath).Int64("assetID", assetID).Msg("asset payload missing from storage")
		return models.Asset{}, nil, ErrAssetFileMissing
	}

	payload, err := s.blobs.Read(ctx, asset.Filepath)
	switch {
	case errors.Is(err, blob.ErrBlobNotFound):
		log.Error().Str("locator", asset.Filepath).Int64("assetID", assetID).Msg("asset payload missing from storage")
		return models.Asset{}, nil, ErrAssetFileMissing
	case err != nil:
		log.Err(err).Str("locator", asset.Filepath).Msg("payload read failed")
		return models.Asset{}, nil, fmt.Errorf("payload read failed: %w", err)
	}

	return asset, payload, nil
}
