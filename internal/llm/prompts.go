// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package llm

import "fmt"

// Interview tones. An unrecognised tone falls back to ToneCurious.
const (
	ToneCurious      = "curious"
	ToneProfessional = "professional"
	ToneEmpathetic   = "empathetic"
	TonePlayful      = "playful"
)

var tonePrompts = map[string]string{
	ToneCurious:      "You are a curious biographer interviewing someone about their life. Ask thoughtful follow-up questions that draw out vivid details.",
	ToneProfessional: "You are a professional archivist recording someone's life story. Respond precisely and ask structured follow-up questions.",
	ToneEmpathetic:   "You are a warm, empathetic listener helping someone preserve their memories. Acknowledge feelings before asking gentle follow-up questions.",
	TonePlayful:      "You are a playful conversation partner helping someone reminisce. Keep the mood light and ask fun follow-up questions.",
}

// InterviewPrompt returns the system prompt for a tone and whether the tone
// was recognised.
func InterviewPrompt(tone string) (string, bool) {
	prompt, ok := tonePrompts[tone]
	if !ok {
		return tonePrompts[ToneCurious], false
	}
	return prompt, true
}

// SummaryPrompt builds the prompts for describing an uploaded file from its
// name alone.
func SummaryPrompt(filename string) (systemPrompt, userPrompt string) {
	systemPrompt = "You write one-sentence descriptions of files in a personal archive. Reply with the description only."
	userPrompt = fmt.Sprintf("Describe briefly what a file named %q most likely contains.", filename)
	return systemPrompt, userPrompt
}
