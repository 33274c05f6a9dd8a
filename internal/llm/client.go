// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkuznetsov/legacy-keeper/internal/config"
	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/utils"
)

// ErrGenerationFailed wraps every upstream completion failure so callers
// can match the class without caring about the transport detail.
var ErrGenerationFailed = errors.New("completion request failed")

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	http   *utils.HTTPClient
	model  string
	logger *logger.Logger
}

var _ Generator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewClient(cfg config.LLM, log *logger.Logger) *Client {
	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient, model: cfg.Model, logger: log}
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	var response chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		SetError(&response).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if resp.IsError() {
		message := resp.Status()
		if response.Error != nil && response.Error.Message != "" {
			message = response.Error.Message
		}
		c.logger.Error().Int("status", resp.StatusCode()).Str("message", message).Msg("completion request rejected")
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrGenerationFailed)
	}

	reply := strings.TrimSpace(response.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}

	return reply, nil
}
