// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

// Package llm generates interview follow-ups and asset descriptions. The
// primary generator talks to an OpenAI-compatible chat completions API;
// when no API key is configured a deterministic offline generator takes
// its place so the rest of the application keeps working.
package llm

import (
	"context"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
)

// Generator produces a completion for a system prompt and a user prompt.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// New selects the generator: the API-backed client when a key is
// configured, the offline generator otherwise.
func New(cfg config.LLM, log *logger.Logger) Generator {
	if cfg.APIKey == "" {
		log.Info().Msg("no LLM API key configured, using offline generator")
		return NewOfflineGenerator()
	}

	return NewClient(cfg, log)
}
