package service

import (
	"context"
	"io"
	"time"

	"github.com/dkuznetsov/legacy-keeper/internal/credstore"
	"github.com/dkuznetsov/legacy-keeper/models"
)

type mockCredentialStore struct {
	register   func(username, name, email, password string) (credstore.Record, error)
	verify     func(username, password string) (bool, credstore.Record)
	find       func(username string) (credstore.Record, bool)
	remove     func(username string) error
	signingKey string
	expiry     time.Duration
}

func (m *mockCredentialStore) Register(username, name, email, password string) (credstore.Record, error) {
	return m.register(username, name, email, password)
}

func (m *mockCredentialStore) Verify(username, password string) (bool, credstore.Record) {
	return m.verify(username, password)
}

func (m *mockCredentialStore) Find(username string) (credstore.Record, bool) {
	return m.find(username)
}

func (m *mockCredentialStore) Remove(username string) error {
	return m.remove(username)
}

func (m *mockCredentialStore) SigningKey() string {
	if m.signingKey == "" {
		return "test-signing-key"
	}
	return m.signingKey
}

func (m *mockCredentialStore) Expiry() time.Duration {
	if m.expiry == 0 {
		return time.Hour
	}
	return m.expiry
}

type mockUserRepository struct {
	createUser         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsername func(ctx context.Context, username string) (models.User, error)
	deleteUser         func(ctx context.Context, username string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsername(ctx, username)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, username string) error {
	return m.deleteUser(ctx, username)
}

type mockMemoryRepository struct {
	createMemory func(ctx context.Context, memory models.Memory) (models.Memory, error)
	listMemories func(ctx context.Context, userID int64, limit int) ([]models.Memory, error)
}

func (m *mockMemoryRepository) CreateMemory(ctx context.Context, memory models.Memory) (models.Memory, error) {
	return m.createMemory(ctx, memory)
}

func (m *mockMemoryRepository) ListMemories(ctx context.Context, userID int64, limit int) ([]models.Memory, error) {
	return m.listMemories(ctx, userID, limit)
}

type mockAssetRepository struct {
	createAsset func(ctx context.Context, asset models.Asset) (models.Asset, error)
	getAsset    func(ctx context.Context, userID, assetID int64) (models.Asset, error)
	listAssets  func(ctx context.Context, userID int64, limit int) ([]models.Asset, error)
}

func (m *mockAssetRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	return m.createAsset(ctx, asset)
}

func (m *mockAssetRepository) GetAsset(ctx context.Context, userID, assetID int64) (models.Asset, error) {
	return m.getAsset(ctx, userID, assetID)
}

func (m *mockAssetRepository) ListAssets(ctx context.Context, userID int64, limit int) ([]models.Asset, error) {
	return m.listAssets(ctx, userID, limit)
}

type mockBlobStorage struct {
	put    func(ctx context.Context, r io.Reader, suggestedName string) (string, string, error)
	exists func(ctx context.Context, locator string) (bool, error)
	read   func(ctx context.Context, locator string) (io.ReadCloser, error)
}

func (m *mockBlobStorage) Put(ctx context.Context, r io.Reader, suggestedName string) (string, string, error) {
	return m.put(ctx, r, suggestedName)
}

func (m *mockBlobStorage) Exists(ctx context.Context, locator string) (bool, error) {
	if m.exists == nil {
		return true, nil
	}
	return m.exists(ctx, locator)
}

func (m *mockBlobStorage) Read(ctx context.Context, locator string) (io.ReadCloser, error) {
	return m.read(ctx, locator)
}

type mockGenerator struct {
	generate func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return m.generate(ctx, systemPrompt, userPrompt)
}
