package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dkuznetsov/legacy-keeper/internal/blob"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
	"github.com/dkuznetsov/legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func TestAssetService_AddAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a sanitised record without payload", func(t *testing.T) {
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, int64(7), asset.UserID)
				assert.Equal(t, "family treeodt", asset.Filename)
				assert.Equal(t, "genealogy notes", asset.Description)
				assert.Empty(t, asset.Filepath)
				asset.ID = 1
				return asset, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		asset, err := svc.AddAsset(ctx, "alice", "family tree/odt", "genealogy notes")
		require.NoError(t, err)
		assert.Equal(t, int64(1), asset.ID)
	})

	t.Run("empty or unusable names are rejected", func(t *testing.T) {
		svc := NewAssetService(&mockAssetRepository{}, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		_, err := svc.AddAsset(ctx, "alice", "", "desc")
		assert.ErrorIs(t, err, ErrEmptyFilename)

		_, err = svc.AddAsset(ctx, "alice", "///", "desc")
		assert.ErrorIs(t, err, ErrEmptyFilename)
	})
}

func TestAssetService_Upload(t *testing.T) {
	ctx := context.Background()

	storedBlob := func(t *testing.T, contents *string) *mockBlobStorage {
		t.Helper()
		return &mockBlobStorage{
			put: func(ctx context.Context, r io.Reader, suggestedName string) (string, string, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				if contents != nil {
					*contents = string(data)
				}
				return "1700000000_" + suggestedName, "uploads/1700000000_" + suggestedName, nil
			},
		}
	}

	t.Run("explicit description is kept verbatim", func(t *testing.T) {
		var payload string
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, "1700000000_photo.jpg", asset.Filename)
				assert.Equal(t, "uploads/1700000000_photo.jpg", asset.Filepath)
				assert.Equal(t, "wedding photo", asset.Description)
				return asset, nil
			},
		}
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				t.Fatal("Generate must not be called when a description is given")
				return "", nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), storedBlob(t, &payload), generator, logger.Nop())

		_, err := svc.Upload(ctx, "alice", "photo.jpg", stringPtr("wedding photo"), strings.NewReader("jpeg bytes"))
		require.NoError(t, err)
		assert.Equal(t, "jpeg bytes", payload)
	})

	t.Run("explicit empty description stays empty", func(t *testing.T) {
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				assert.Empty(t, asset.Description)
				return asset, nil
			},
		}
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				t.Fatal("Generate must not be called when a description is given")
				return "", nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), storedBlob(t, nil), generator, logger.Nop())

		_, err := svc.Upload(ctx, "alice", "photo.jpg", stringPtr(""), strings.NewReader("x"))
		require.NoError(t, err)
	})

	t.Run("absent description is generated from the filename", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				assert.Contains(t, userPrompt, "photo.jpg")
				return "A photograph.", nil
			},
		}
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, "A photograph.", asset.Description)
				return asset, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), storedBlob(t, nil), generator, logger.Nop())

		result, err := svc.Upload(ctx, "alice", "photo.jpg", nil, strings.NewReader("x"))
		require.NoError(t, err)
		assert.NoError(t, result.SummaryErr)
	})

	t.Run("summary failure falls back without failing the upload", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				return "", errors.New("backend down")
			},
		}
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				assert.Equal(t, "Uploaded file photo.jpg", asset.Description)
				return asset, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), storedBlob(t, nil), generator, logger.Nop())

		result, err := svc.Upload(ctx, "alice", "photo.jpg", nil, strings.NewReader("x"))
		require.NoError(t, err)
		assert.ErrorIs(t, result.SummaryErr, ErrExternalService)
		assert.Contains(t, result.SummaryErr.Error(), "backend down")
	})

	t.Run("database failure reports the orphaned payload", func(t *testing.T) {
		assets := &mockAssetRepository{
			createAsset: func(ctx context.Context, asset models.Asset) (models.Asset, error) {
				return models.Asset{}, store.ErrExecutingStatement
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), storedBlob(t, nil), &mockGenerator{}, logger.Nop())

		_, err := svc.Upload(ctx, "alice", "photo.jpg", stringPtr("d"), strings.NewReader("x"))

		var orphan *OrphanBlobError
		require.ErrorAs(t, err, &orphan)
		assert.Equal(t, "uploads/1700000000_photo.jpg", orphan.Locator)
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})

	t.Run("empty filename is rejected before storing anything", func(t *testing.T) {
		blobs := &mockBlobStorage{
			put: func(ctx context.Context, r io.Reader, suggestedName string) (string, string, error) {
				t.Fatal("Put must not be called")
				return "", "", nil
			},
		}

		svc := NewAssetService(&mockAssetRepository{}, aliceRepository(t), blobs, &mockGenerator{}, logger.Nop())

		_, err := svc.Upload(ctx, "alice", "", nil, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrEmptyFilename)
	})
}

func TestAssetService_ListAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the limit through", func(t *testing.T) {
		assets := &mockAssetRepository{
			listAssets: func(ctx context.Context, userID int64, limit int) ([]models.Asset, error) {
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, 5, limit)
				return []models.Asset{{ID: 2}, {ID: 1}}, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		got, err := svc.ListAssets(ctx, "alice", 5)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		assets := &mockAssetRepository{
			listAssets: func(ctx context.Context, userID int64, limit int) ([]models.Asset, error) {
				assert.Equal(t, defaultListLimit, limit)
				return nil, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		_, err := svc.ListAssets(ctx, "alice", 0)
		require.NoError(t, err)
	})

	t.Run("unknown user yields an empty result", func(t *testing.T) {
		assets := &mockAssetRepository{
			listAssets: func(ctx context.Context, userID int64, limit int) ([]models.Asset, error) {
				t.Fatal("ListAssets must not be called for an unknown user")
				return nil, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		got, err := svc.ListAssets(ctx, "ghost", 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAssetService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the record and its payload", func(t *testing.T) {
		assets := &mockAssetRepository{
			getAsset: func(ctx context.Context, userID, assetID int64) (models.Asset, error) {
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, int64(3), assetID)
				return models.Asset{ID: 3, Filename: "1700000000_photo.jpg", Filepath: "uploads/1700000000_photo.jpg"}, nil
			},
		}
		blobs := &mockBlobStorage{
			read: func(ctx context.Context, locator string) (io.ReadCloser, error) {
				assert.Equal(t, "uploads/1700000000_photo.jpg", locator)
				return io.NopCloser(strings.NewReader("jpeg bytes")), nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), blobs, &mockGenerator{}, logger.Nop())

		asset, payload, err := svc.Download(ctx, "alice", 3)
		require.NoError(t, err)
		defer payload.Close()

		data, err := io.ReadAll(payload)
		require.NoError(t, err)
		assert.Equal(t, "jpeg bytes", string(data))
		assert.Equal(t, int64(3), asset.ID)
	})

	t.Run("foreign or unknown asset fails", func(t *testing.T) {
		assets := &mockAssetRepository{
			getAsset: func(ctx context.Context, userID, assetID int64) (models.Asset, error) {
				return models.Asset{}, store.ErrAssetNotFound
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		_, _, err := svc.Download(ctx, "alice", 99)
		assert.ErrorIs(t, err, store.ErrAssetNotFound)
	})

	t.Run("manual asset without payload fails", func(t *testing.T) {
		assets := &mockAssetRepository{
			getAsset: func(ctx context.Context, userID, assetID int64) (models.Asset, error) {
				return models.Asset{ID: 3, Filename: "heirloom ring"}, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), &mockBlobStorage{}, &mockGenerator{}, logger.Nop())

		_, _, err := svc.Download(ctx, "alice", 3)
		assert.ErrorIs(t, err, ErrAssetFileMissing)
	})

	t.Run("record without stored payload fails", func(t *testing.T) {
		assets := &mockAssetRepository{
			getAsset: func(ctx context.Context, userID, assetID int64) (models.Asset, error) {
				return models.Asset{ID: 3, Filepath: "uploads/gone.jpg"}, nil
			},
		}
		blobs := &mockBlobStorage{
			exists: func(ctx context.Context, locator string) (bool, error) {
				assert.Equal(t, "uploads/gone.jpg", locator)
				return false, nil
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), blobs, &mockGenerator{}, logger.Nop())

		_, _, err := svc.Download(ctx, "alice", 3)
		assert.ErrorIs(t, err, ErrAssetFileMissing)
	})

	t.Run("payload vanishing between check and read fails", func(t *testing.T) {
		assets := &mockAssetRepository{
			getAsset: func(ctx context.Context, userID, assetID int64) (models.Asset, error) {
				return models.Asset{ID: 3, Filepath: "uploads/gone.jpg"}, nil
			},
		}
		blobs := &mockBlobStorage{
			read: func(ctx context.Context, locator string) (io.ReadCloser, error) {
				return nil, blob.ErrBlobNotFound
			},
		}

		svc := NewAssetService(assets, aliceRepository(t), blobs, &mockGenerator{}, logger.Nop())

		_, _, err := svc.Download(ctx, "alice", 3)
		assert.ErrorIs(t, err, ErrAssetFileMissing)
	})
}
