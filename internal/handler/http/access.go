// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/service"
	"github.com/wisling/case-portal/internal/store"
)

// loginRequest is the body of POST /api/company/{slug}/login.
type loginRequest struct {
	Password string `json:"password"`
	UserID   string `json:"user_id,omitempty"`
	CaseID   string `json:"case_id,omitempty"`
}

func (h *Handler) portalLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.PortalService.Login(ctx, slug, req.Password, req.UserID, req.CaseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCompanyNotFound):
			log.Err(err).Str("company_slug", slug).Msg("unknown company")
			http.Error(w, "unknown company", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPortalPassword):
			log.Err(err).Str("company_slug", slug).Msg("wrong portal password")
			http.Error(w, "wrong portal password", http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrStorageWrite):
			log.Err(err).Msg("session could not be persisted")
			http.Error(w, http.StatusText(http.StatusInsufficientStorage), http.StatusInsufficientStorage)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during portal login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("company_slug", slug).Msg("portal session created")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) portalLogout(w http.ResponseWriter, r *http.Request) {
	h.services.PortalService.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	extended, err := h.services.PortalService.ExtendSession(ctx, slug)
	if err != nil {
		log.Err(err).Str("company_slug", slug).Msg("session refresh failed")
		http.Error(w, http.StatusText(http.StatusInsufficientStorage), http.StatusInsufficientStorage)
		return
	}

	if !extended {
		log.Debug().Str("company_slug", slug).Msg("no session to refresh")
		http.Error(w, "no valid session", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionInfo(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	info := h.services.PortalService.SessionInfo(r.Context(), slug)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		logger.FromRequest(r).Err(err).Msg("encoding session info failed")
	}
}
