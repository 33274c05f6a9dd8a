package service

import (
	"github.com/dkuznetsov/legacy-keeper/internal/blob"
	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/llm"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	MemoryService MemoryService
	AssetService  AssetService
}

func NewServices(storages *store.Storages, credentials CredentialStore, blobs blob.Storage, generator llm.Generator, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(credentials, storages.UserRepository, cfg.App, logger),
		MemoryService: NewMemoryService(storages.MemoryRepository, storages.UserRepository, generator, logger),
		AssetService:  NewAssetService(storages.AssetRepository, storages.UserRepository, blobs, generator, logger),
	}
}
