package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// assetRepository executes all asset CRUD operations against the
// "assets" table using the embedded [*DB] connection.
type assetRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetRepository constructs an [AssetRepository] backed by
// the provided database connection and logger.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	return &assetRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAsset inserts a new asset row and returns it with the
// server-assigned id. An empty Filepath is a valid value (manual entry with
// no backing blob); no existence check is performed on the locator.
func (a *assetRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	if asset.UploadedAt.IsZero() {
		asset.UploadedAt = time.Now().UTC()
	}

	row := a.DB.QueryRowContext(ctx, createAsset,
		asset.UserID, asset.Filename, asset.Filepath, asset.Description, asset.UploadedAt)

	var created models.Asset
	if err := row.Scan(&created.ID, &created.UserID, &created.Filename,
		&created.Filepath, &created.Description, &created.UploadedAt); err != nil {
		log.Err(err).
			Str("func", "*assetRepository.CreateAsset").
			Int64("user_id", asset.UserID).
			Msg("failed to insert asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetAsset looks up a single asset by owner and id. Scoping the lookup by
// userID keeps one user's assets invisible to another.
// Returns [ErrAssetNotFound] when no row matches.
func (a *assetRepository) GetAsset(ctx context.Context, userID, assetID int64) (models.Asset, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, getAssetByID, userID, assetID)

	var found models.Asset
	if err := row.Scan(&found.ID, &found.UserID, &found.Filename,
		&found.Filepath, &found.Description, &found.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}

		log.Err(err).
			Str("func", "*assetRepository.GetAsset").
			Int64("user_id", userID).
			Int64("asset_id", assetID).
			Msg("failed to scan asset row")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListAssets returns up to limit assets owned by userID, newest first, with
// ties broken by descending id. An empty result is a valid outcome.
func (a *assetRepository) ListAssets(ctx context.Context, userID int64, limit int) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "user_id", "filename", "filepath", "description", "uploaded_at").
		From("assets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("uploaded_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*assetRepository.ListAssets").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*assetRepository.ListAssets").
			Int64("user_id", userID).
			Int("limit", limit).
			Msg("failed to execute query for listing assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Asset, 0, limit)

	for rows.Next() {
		var item models.Asset

		if scanErr := rows.Scan(&item.ID, &item.UserID, &item.Filename,
			&item.Filepath, &item.Description, &item.UploadedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*assetRepository.ListAssets").
				Int64("user_id", userID).
				Msg("failed to scan asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*assetRepository.ListAssets").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
