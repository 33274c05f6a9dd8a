// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes behind a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/session", h.session)
		r.Delete("/api/user", h.deleteAccount)

		r.Post("/api/memories", h.addMemory)
		r.Get("/api/memories", h.listMemories)
		r.Post("/api/memories/interview", h.interview)

		r.Post("/api/assets", h.addAsset)
		r.Get("/api/assets", h.listAssets)
		r.Post("/api/assets/upload", h.uploadAsset)
		r.Get("/api/assets/{assetID}/download", h.downloadAsset)
	})

	return router
}
