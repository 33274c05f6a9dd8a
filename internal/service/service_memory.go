// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkuznetsov/legacy-keeper/internal/llm"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// defaultListLimit caps list responses when the caller does not ask for a
// specific page size.
const defaultListLimit = 100

// memoryService is the concrete implementation of MemoryService.
type memoryService struct {
	memoryRepository store.MemoryRepository
	userRepository   store.UserRepository
	generator        llm.Generator
	logger           *logger.Logger
}

func NewMemoryService(memoryRepository store.MemoryRepository, userRepository store.UserRepository, generator llm.Generator, logger *logger.Logger) MemoryService {
	return &memoryService{
		memoryRepository: memoryRepository,
		userRepository:   userRepository,
		generator:        generator,
		logger:           logger,
	}
}

// AddMemory records a free-text memory for the user.
//
// Returns the persisted memory (with a server-assigned ID and timestamp) or:
//   - ErrEmptyContent if content is blank or whitespace-only.
//   - A wrapped storage error if the user lookup or the insert fails.
func (m *memoryService) AddMemory(ctx context.Context, username, content string) (models.Memory, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(content) == "" {
		log.Error().Str("username", username).Msg("empty memory content provided")
		return models.Memory{}, ErrEmptyContent
	}

	user, err := m.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Memory{}, fmt.Errorf("user search by username failed: %w", err)
	}

	memory, err := m.memoryRepository.CreateMemory(ctx, models.Memory{UserID: user.UserID, Content: content})
	if err != nil {
		log.Err(err).Str("username", username).Msg("memory creation ended with error")
		return models.Memory{}, fmt.Errorf("memory creation ended with error: %w", err)
	}

	return memory, nil
}

// ListMemories returns the user's memories, newest first. A non-positive
// limit falls back to defaultListLimit. An unknown username yields an empty
// result, not an error: the catalogue of a user that does not exist is empty.
func (m *memoryService) ListMemories(ctx context.Context, username string, limit int) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultListLimit
	}

	user, err := m.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("listing memories for unknown user")
		return []models.Memory{}, nil
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	memories, err := m.memoryRepository.ListMemories(ctx, user.UserID, limit)
	if err != nil {
		log.Err(err).Str("username", username).Msg("memory listing ended with error")
		return nil, fmt.Errorf("memory listing ended with error: %w", err)
	}

	return memories, nil
}

// Interview runs one guided-capture exchange: the prompt goes to the
// completion backend with the system prompt for the requested tone, and the
// exchange is saved as a single memory in the form
//
//	Q: <prompt>
//
//	A: <reply>
//
// An unrecognised tone falls back to the curious one rather than failing.
//
// Returns the reply plus the persisted memory, or:
//   - ErrEmptyContent if the prompt is blank or whitespace-only.
//   - ErrExternalService (wrapped) if the completion backend fails; nothing
//     is saved in that case.
//   - A wrapped storage error if the user lookup or the insert fails.
func (m *memoryService) Interview(ctx context.Context, username, prompt, tone string) (string, models.Memory, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(prompt) == "" {
		log.Error().Str("username", username).Msg("empty interview prompt provided")
		return "", models.Memory{}, ErrEmptyContent
	}

	user, err := m.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return "", models.Memory{}, fmt.Errorf("user search by username failed: %w", err)
	}

	systemPrompt, known := llm.InterviewPrompt(tone)
	if !known && tone != "" {
		log.Info().Str("tone", tone).Msg("unknown interview tone, using default")
	}

	reply, err := m.generator.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		log.Err(err).Str("username", username).Msg("interview completion failed")
		return "", models.Memory{}, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	content := fmt.Sprintf("Q: %s\n\nA: %s", prompt, reply)

	memory, err := m.memoryRepository.CreateMemory(ctx, models.Memory{UserID: user.UserID, Content: content})
	if err != nil {
		log.Err(err).Str("username", username).Msg("memory creation ended with error")
		return "", models.Memory{}, fmt.Errorf("memory creation ended with error: %w", err)
	}

	return reply, memory, nil
}
