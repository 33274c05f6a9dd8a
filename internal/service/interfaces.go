// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package service

import (
	"context"
	"io"
	"time"

	"github.com/dkuznetsov/legacy-keeper/internal/credstore"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// CredentialStore is the slice of the credential file store the services
// consume.
type CredentialStore interface {
	Register(username, name, email, password string) (credstore.Record, error)
	Verify(username, password string) (bool, credstore.Record)
	Find(username string) (credstore.Record, bool)
	Remove(username string) error
	SigningKey() string
	Expiry() time.Duration
}

// LoginResult is the outcome of a successful authentication.
//
// ReconcileErr is non-fatal: it is set when the credential entry verified
// but the matching database row could not be found or created. The session
// is still issued; the caller decides whether to surface the condition.
type LoginResult struct {
	User         models.User
	Token        models.Token
	ReconcileErr error
}

type AuthService interface {
	Register(ctx context.Context, username, name, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Session(ctx context.Context, username string) (models.User, error)
	DeleteAccount(ctx context.Context, username string) error
}

type MemoryService interface {
	AddMemory(ctx context.Context, username, content string) (models.Memory, error)
	ListMemories(ctx context.Context, username string, limit int) ([]models.Memory, error)
	Interview(ctx context.Context, username, prompt, tone string) (string, models.Memory, error)
}

// UploadResult is the outcome of a successful upload.
//
// SummaryErr is non-fatal: it is set when no description was supplied and
// the generated summary failed, so the asset carries a plain fallback
// description instead. The upload still succeeds; the caller decides
// whether to surface the condition.
type UploadResult struct {
	Asset      models.Asset
	SummaryErr error
}

type AssetService interface {
	AddAsset(ctx context.Context, username, filename, description string) (models.Asset, error)
	Upload(ctx context.Context, username, filename string, description *string, payload io.Reader) (UploadResult, error)
	ListAssets(ctx context.Context, username string, limit int) ([]models.Asset, error)
	Download(ctx context.Context, username string, assetID int64) (models.Asset, io.ReadCloser, error)
}
