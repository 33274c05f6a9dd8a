package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
	"github.com/dkuznetsov/legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceRepository(t *testing.T) *mockUserRepository {
	t.Helper()

	return &mockUserRepository{
		findUserByUsername: func(ctx context.Context, username string) (models.User, error) {
			if username != "alice" {
				return models.User{}, store.ErrUserNotFound
			}
			return models.User{UserID: 7, Username: "alice", Name: "Alice"}, nil
		},
	}
}

func TestMemoryService_AddMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("persists content under the user's ID", func(t *testing.T) {
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				assert.Equal(t, int64(7), memory.UserID)
				assert.Equal(t, "my first day of school", memory.Content)
				memory.ID = 1
				return memory, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), &mockGenerator{}, logger.Nop())

		memory, err := svc.AddMemory(ctx, "alice", "my first day of school")
		require.NoError(t, err)
		assert.Equal(t, int64(1), memory.ID)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		svc := NewMemoryService(&mockMemoryRepository{}, aliceRepository(t), &mockGenerator{}, logger.Nop())

		_, err := svc.AddMemory(ctx, "alice", "")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("whitespace-only content is rejected", func(t *testing.T) {
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				t.Fatal("CreateMemory must not be called for blank content")
				return models.Memory{}, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), &mockGenerator{}, logger.Nop())

		_, err := svc.AddMemory(ctx, "alice", "   \t\n  ")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("unknown user fails", func(t *testing.T) {
		svc := NewMemoryService(&mockMemoryRepository{}, aliceRepository(t), &mockGenerator{}, logger.Nop())

		_, err := svc.AddMemory(ctx, "ghost", "content")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestMemoryService_ListMemories(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the limit through", func(t *testing.T) {
		memories := &mockMemoryRepository{
			listMemories: func(ctx context.Context, userID int64, limit int) ([]models.Memory, error) {
				assert.Equal(t, int64(7), userID)
				assert.Equal(t, 5, limit)
				return []models.Memory{{ID: 2}, {ID: 1}}, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), &mockGenerator{}, logger.Nop())

		got, err := svc.ListMemories(ctx, "alice", 5)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		memories := &mockMemoryRepository{
			listMemories: func(ctx context.Context, userID int64, limit int) ([]models.Memory, error) {
				assert.Equal(t, defaultListLimit, limit)
				return nil, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), &mockGenerator{}, logger.Nop())

		_, err := svc.ListMemories(ctx, "alice", 0)
		require.NoError(t, err)

		_, err = svc.ListMemories(ctx, "alice", -3)
		require.NoError(t, err)
	})

	t.Run("unknown user yields an empty result", func(t *testing.T) {
		memories := &mockMemoryRepository{
			listMemories: func(ctx context.Context, userID int64, limit int) ([]models.Memory, error) {
				t.Fatal("ListMemories must not be called for an unknown user")
				return nil, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), &mockGenerator{}, logger.Nop())

		got, err := svc.ListMemories(ctx, "ghost", 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMemoryService_Interview(t *testing.T) {
	ctx := context.Background()

	t.Run("saves the exchange as a single memory", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				assert.Contains(t, systemPrompt, "empathetic")
				assert.Equal(t, "tell me about grandma", userPrompt)
				return "She sounds wonderful. What did her kitchen smell like?", nil
			},
		}
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				assert.Equal(t, "Q: tell me about grandma\n\nA: She sounds wonderful. What did her kitchen smell like?", memory.Content)
				memory.ID = 3
				return memory, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), generator, logger.Nop())

		reply, memory, err := svc.Interview(ctx, "alice", "tell me about grandma", "empathetic")
		require.NoError(t, err)
		assert.Equal(t, "She sounds wonderful. What did her kitchen smell like?", reply)
		assert.Equal(t, int64(3), memory.ID)
	})

	t.Run("unknown tone still interviews", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				assert.NotEmpty(t, systemPrompt)
				return "reply", nil
			},
		}
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				return memory, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), generator, logger.Nop())

		_, _, err := svc.Interview(ctx, "alice", "prompt", "sarcastic")
		assert.NoError(t, err)
	})

	t.Run("empty prompt is rejected", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				t.Fatal("Generate must not be called for a blank prompt")
				return "", nil
			},
		}

		svc := NewMemoryService(&mockMemoryRepository{}, aliceRepository(t), generator, logger.Nop())

		_, _, err := svc.Interview(ctx, "alice", "", "curious")
		assert.ErrorIs(t, err, ErrEmptyContent)

		_, _, err = svc.Interview(ctx, "alice", "  \t\n ", "curious")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("backend failure saves nothing", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				t.Fatal("CreateMemory must not be called")
				return models.Memory{}, nil
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), generator, logger.Nop())

		_, _, err := svc.Interview(ctx, "alice", "prompt", "curious")
		assert.ErrorIs(t, err, ErrExternalService)
	})

	t.Run("storage failure surfaces after a successful completion", func(t *testing.T) {
		generator := &mockGenerator{
			generate: func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				return "reply", nil
			},
		}
		memories := &mockMemoryRepository{
			createMemory: func(ctx context.Context, memory models.Memory) (models.Memory, error) {
				return models.Memory{}, fmt.Errorf("%w: insert failed", store.ErrExecutingStatement)
			},
		}

		svc := NewMemoryService(memories, aliceRepository(t), generator, logger.Nop())

		_, _, err := svc.Interview(ctx, "alice", "prompt", "curious")
		assert.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}
