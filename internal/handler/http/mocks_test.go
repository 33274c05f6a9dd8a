package http

import (
	"context"
	"io"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/service"
	"github.com/dkuznetsov/legacy-keeper/models"
)

const testCookieName = "legacy_keeper_auth"

func newTestRouter(services *service.Services) *chi.Mux {
	h := NewHandler(services, testCookieName, time.Hour, logger.Nop())
	return h.Init()
}

// validToken is accepted by the default mockAuthService.
const validToken = "valid-session-token"

func acceptingAuthService() *mockAuthService {
	return &mockAuthService{
		parseToken: func(ctx context.Context, tokenString string) (models.Token, error) {
			if tokenString != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{
				Username:      "alice",
				SessionClaims: models.SessionClaims{DisplayName: "Alice"},
			}, nil
		},
	}
}

type mockAuthService struct {
	register      func(ctx context.Context, username, name, email, password string) (models.User, error)
	login         func(ctx context.Context, username, password string) (service.LoginResult, error)
	parseToken    func(ctx context.Context, tokenString string) (models.Token, error)
	session       func(ctx context.Context, username string) (models.User, error)
	deleteAccount func(ctx context.Context, username string) error
}

func (m *mockAuthService) Register(ctx context.Context, username, name, email, password string) (models.User, error) {
	return m.register(ctx, username, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	return m.login(ctx, username, password)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseToken(ctx, tokenString)
}

func (m *mockAuthService) Session(ctx context.Context, username string) (models.User, error) {
	return m.session(ctx, username)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, username string) error {
	return m.deleteAccount(ctx, username)
}

type mockMemoryService struct {
	addMemory    func(ctx context.Context, username, content string) (models.Memory, error)
	listMemories func(ctx context.Context, username string, limit int) ([]models.Memory, error)
	interview    func(ctx context.Context, username, prompt, tone string) (string, models.Memory, error)
}

func (m *mockMemoryService) AddMemory(ctx context.Context, username, content string) (models.Memory, error) {
	return m.addMemory(ctx, username, content)
}

func (m *mockMemoryService) ListMemories(ctx context.Context, username string, limit int) ([]models.Memory, error) {
	return m.listMemories(ctx, username, limit)
}

func (m *mockMemoryService) Interview(ctx context.Context, username, prompt, tone string) (string, models.Memory, error) {
	return m.interview(ctx, username, prompt, tone)
}

type mockAssetService struct {
	addAsset   func(ctx context.Context, username, filename, description string) (models.Asset, error)
	upload     func(ctx context.Context, username, filename string, description *string, payload io.Reader) (service.UploadResult, error)
	listAssets func(ctx context.Context, username string, limit int) ([]models.Asset, error)
	download   func(ctx context.Context, username string, assetID int64) (models.Asset, io.ReadCloser, error)
}

func (m *mockAssetService) AddAsset(ctx context.Context, username, filename, description string) (models.Asset, error) {
	return m.addAsset(ctx, username, filename, description)
}

func (m *mockAssetService) Upload(ctx context.Context, username, filename string, description *string, payload io.Reader) (service.UploadResult, error) {
	return m.upload(ctx, username, filename, description, payload)
}

func (m *mockAssetService) ListAssets(ctx context.Context, username string, limit int) ([]models.Asset, error) {
	return m.listAssets(ctx, username, limit)
}

func (m *mockAssetService) Download(ctx context.Context, username string, assetID int64) (models.Asset, io.ReadCloser, error) {
	return m.download(ctx, username, assetID)
}
