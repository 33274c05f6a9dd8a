// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// offlineReplies are the canned follow-ups used when no API key is
// configured. The pick is a hash of both prompts, so the same question in
// the same tone always yields the same reply.
var offlineReplies = []string{
	"That sounds like a moment worth holding on to. What details do you remember most vividly about %s?",
	"Thank you for sharing that. Who else was part of the story around %s?",
	"It is striking how clearly you recall that. How did %s change things for you afterwards?",
	"I would love to hear more. What led up to %s in the first place?",
	"That memory paints quite a picture. If you could revisit %s, what would you pay closer attention to?",
}

// OfflineGenerator produces deterministic canned completions without any
// network access.
type OfflineGenerator struct{}

var _ Generator = (*OfflineGenerator)(nil)

func NewOfflineGenerator() *OfflineGenerator {
	return &OfflineGenerator{}
}

func (g *OfflineGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	sum := sha256.Sum256([]byte(systemPrompt + "\x00" + userPrompt))
	pick := binary.BigEndian.Uint64(sum[:8]) % uint64(len(offlineReplies))

	topic := strings.TrimSpace(userPrompt)
	if topic == "" {
		topic = "that"
	}
	if runes := []rune(topic); len(runes) > 80 {
		topic = string(runes[:80]) + "..."
	}

	return fmt.Sprintf(offlineReplies[pick], fmt.Sprintf("%q", topic)), nil
}
