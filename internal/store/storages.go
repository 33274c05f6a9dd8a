package store

import (
	"context"
	"fmt"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
)

// Storages aggregates all repositories sharing one database connection.
type Storages struct {
	UserRepository   UserRepository
	MemoryRepository MemoryRepository
	AssetRepository  AssetRepository

	db *DB
}

// NewStorages opens the configured database, applies pending migrations and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MemoryRepository: NewMemoryRepository(db, log),
		AssetRepository:  NewAssetRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
