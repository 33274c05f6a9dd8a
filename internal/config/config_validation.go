// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The cookie signing key is deliberately not validated here: an existing
// credential file may already carry one, so the check belongs to the
// credential store, which fails loudly when neither source provides a key.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Blob.Backend {
	case "local":
		if cfg.Storage.Blob.Dir == "" {
			return ErrInvalidStorageConfigs
		}
	case "s3":
		if cfg.Storage.Blob.S3Bucket == "" || cfg.Storage.Blob.S3Region == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Credentials.FilePath == "" || cfg.Credentials.CookieName == "" || cfg.Credentials.ExpiresDays < 1 {
		return ErrInvalidCredentialsConfigs
	}

	return nil
}
