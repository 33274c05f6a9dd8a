// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/utils"
	"github.com/dkuznetsov/legacy-keeper/models"
)

func (h *Handler) addMemory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.MemoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	memory, err := h.services.MemoryService.AddMemory(ctx, username, request.Content)
	if err != nil {
		log.Err(err).Msg("memory creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, memory, http.StatusCreated)
}

func (h *Handler) listMemories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		log.Err(err).Msg("invalid limit parameter")
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	memories, err := h.services.MemoryService.ListMemories(ctx, username, limit)
	if err != nil {
		log.Err(err).Msg("memory listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if memories == nil {
		memories = []models.Memory{}
	}

	utils.WriteJSON(w, memories, http.StatusOK)
}

func (h *Handler) interview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.InterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reply, memory, err := h.services.MemoryService.Interview(ctx, username, request.Prompt, request.Tone)
	if err != nil {
		log.Err(err).Msg("interview exchange failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.InterviewResponse{Reply: reply, Memory: memory}, http.StatusCreated)
}

// parseLimit reads the optional ?limit=N parameter. Absent means 0, which
// the service layer replaces with its default page size.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
