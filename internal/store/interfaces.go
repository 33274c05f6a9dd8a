package store

import (
	"context"

	"github.com/dkuznetsov/legacy-keeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

type MemoryRepository interface {
	CreateMemory(ctx context.Context, memory models.Memory) (models.Memory, error)
	ListMemories(ctx context.Context, userID int64, limit int) ([]models.Memory, error)
}

type AssetRepository interface {
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)
	GetAsset(ctx context.Context, userID, assetID int64) (models.Asset, error)
	ListAssets(ctx context.Context, userID int64, limit int) ([]models.Asset, error)
}
