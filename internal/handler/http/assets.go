// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/utils"
	"github.com/dkuznetsov/legacy-keeper/models"
)

// maxUploadMemory caps the in-memory part of multipart parsing; larger
// payloads spill to temporary files.
const maxUploadMemory = 32 << 20

func (h *Handler) addAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.AssetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	asset, err := h.services.AssetService.AddAsset(ctx, username, request.Filename, request.Description)
	if err != nil {
		log.Err(err).Msg("asset creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, asset, http.StatusCreated)
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
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

	assets, err := h.services.AssetService.ListAssets(ctx, username, limit)
	if err != nil {
		log.Err(err).Msg("asset listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if assets == nil {
		assets = []models.Asset{}
	}

	utils.WriteJSON(w, assets, http.StatusOK)
}

// uploadAsset accepts a multipart form with a "file" part and an optional
// "description" field. A form without the description field asks for a
// generated summary; an empty description field keeps it empty.
func (h *Handler) uploadAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file part")
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var description *string
	if values, present := r.MultipartForm.Value["description"]; present && len(values) > 0 {
		description = &values[0]
	}

	result, err := h.services.AssetService.Upload(ctx, username, header.Filename, description, file)
	if err != nil {
		log.Err(err).Msg("asset upload failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if result.SummaryErr != nil {
		log.Warn().Err(result.SummaryErr).Str("filename", header.Filename).Msg("description summary failed, fallback used")
	}

	utils.WriteJSON(w, result.Asset, http.StatusCreated)
}

func (h *Handler) downloadAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	assetID, err := strconv.ParseInt(chi.URLParam(r, "assetID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid asset ID")
		http.Error(w, "invalid asset ID", http.StatusBadRequest)
		return
	}

	asset, payload, err := h.services.AssetService.Download(ctx, username, assetID)
	if err != nil {
		log.Err(err).Msg("asset download failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	defer payload.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.Filename))

	if _, err := io.Copy(w, payload); err != nil {
		log.Err(err).Int64("assetID", assetID).Msg("payload streaming interrupted")
	}
}
