package store

import (
	"database/sql"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name so that
// repositories and the migration runner can stay driver-agnostic.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the name of the database driver this handle was opened with
// ("sqlite3" or "pgx").
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies all pending schema migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
