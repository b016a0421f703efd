// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

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

	// routes that do not require an unlocked portal
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)

		r.Post("/api/company/{slug}/login", h.portalLogin)
		r.Post("/api/company/{slug}/logout", h.portalLogout)
		r.Post("/api/company/{slug}/session/refresh", h.refreshSession)
		r.Get("/api/company/{slug}/session", h.sessionInfo)

		r.Post("/api/company/{slug}/cases", h.submitCase)

		// case-handler API: listing and lifecycle management
		r.Get("/api/company/{slug}/cases", h.listCases)
		r.Patch("/api/company/{slug}/cases/{caseID}/status", h.updateCaseStatus)
	})

	// protected case views: both identifier segments must decode and the
	// password session must be valid for the company in the path
	router.Group(func(r chi.Router) {
		r.Use(h.guard)

		r.Get("/company/{slug}/case-details/{userID}/{caseID}", h.caseDetails)
		r.Get("/company/{slug}/case-details/{userID}/{caseID}/{tab}", h.caseDetails)

		r.Get("/api/company/{slug}/case-details/{userID}/{caseID}/messages", h.listMessages)
		r.Post("/api/company/{slug}/case-details/{userID}/{caseID}/messages", h.addMessage)
	})

	return router
}
