// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/service"
	"github.com/wisling/case-portal/internal/store"
	"github.com/wisling/case-portal/internal/utils"
	"github.com/wisling/case-portal/models"
)

// defaultCaseTab is rendered when the optional {tab} path segment is absent
// or names an unknown tab.
const defaultCaseTab = "details"

// knownCaseTabs are the case-detail tabs the front end renders.
var knownCaseTabs = map[string]bool{
	"details":   true,
	"messages":  true,
	"documents": true,
	"notes":     true,
}

// submitRequest is the body of POST /api/company/{slug}/cases.
type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// submitResponse returns the created case and its shareable follow-up path.
type submitResponse struct {
	Case      models.Case `json:"case"`
	SharePath string      `json:"share_path"`
}

func (h *Handler) submitCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, sharePath, err := h.services.CaseService.SubmitCase(ctx, slug, req.Title, req.Description)
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
		default:
			log.Err(err).Msg("unexpected error occurred during case submission")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(submitResponse{Case: created, SharePath: sharePath}); err != nil {
		log.Err(err).Msg("encoding submit response failed")
	}
}

// caseDetailsResponse is the payload of the protected case-detail view.
type caseDetailsResponse struct {
	Case models.Case `json:"case"`
	Tab  string      `json:"tab"`
}

func (h *Handler) caseDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caseID, ok := h.caseIDFromContext(w, r)
	if !ok {
		return
	}

	tab := chi.URLParam(r, "tab")
	if !knownCaseTabs[tab] {
		tab = defaultCaseTab
	}

	found, err := h.services.CaseService.GetCase(ctx, caseID)
	if err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			log.Err(err).Int64("case_id", caseID).Msg("case not found")
			http.Error(w, "case not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("case_id", caseID).Msg("unexpected error fetching case")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(caseDetailsResponse{Case: found, Tab: tab}); err != nil {
		log.Err(err).Msg("encoding case details failed")
	}
}

// messageRequest is the body of the protected add-message endpoint.
type messageRequest struct {
	Author models.MessageAuthor `json:"author"`
	Body   string               `json:"body"`
}

func (h *Handler) addMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caseID, ok := h.caseIDFromContext(w, r)
	if !ok {
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	message, err := h.services.CaseService.AddMessage(ctx, caseID, req.Author, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownMessageAuthor), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid message data provided")
			http.Error(w, "invalid message data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCaseNotFound):
			log.Err(err).Int64("case_id", caseID).Msg("case not found")
			http.Error(w, "case not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while adding message")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(message); err != nil {
		log.Err(err).Msg("encoding message failed")
	}
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caseID, ok := h.caseIDFromContext(w, r)
	if !ok {
		return
	}

	messages, err := h.services.CaseService.Messages(ctx, caseID)
	if err != nil {
		log.Err(err).Int64("case_id", caseID).Msg("listing messages failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(messages); err != nil {
		log.Err(err).Msg("encoding messages failed")
	}
}

// caseIDFromContext retrieves the decrypted case identifier the guard stored
// and converts it to the repository's int64 form. Writes the error response
// itself; callers bail out when ok is false.
func (h *Handler) caseIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	log := logger.FromRequest(r)

	plaintext, ok := utils.GetCaseIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("case ID missing from context, guard not applied?")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, false
	}

	caseID, err := strconv.ParseInt(plaintext, 10, 64)
	if err != nil {
		log.Err(err).Msg("decrypted case ID is not numeric")
		writeInvalidLink(w)
		return 0, false
	}

	return caseID, true
}

func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	filter := models.CaseFilter{
		Status:      models.CaseStatus(r.URL.Query().Get("status")),
		NewestFirst: r.URL.Query().Get("order") == "newest",
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			log.Err(err).Str("limit", raw).Msg("invalid limit parameter")
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	cases, err := h.services.CaseService.ListCases(ctx, slug, filter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCaseStatus):
			log.Err(err).Msg("unknown status filter")
			http.Error(w, "unknown status filter", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCompanyNotFound):
			log.Err(err).Str("company_slug", slug).Msg("unknown company")
			http.Error(w, "unknown company", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("listing cases failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cases); err != nil {
		log.Err(err).Msg("encoding cases failed")
	}
}

// statusRequest is the body of the case status update endpoint.
type statusRequest struct {
	Status models.CaseStatus `json:"status"`
}

func (h *Handler) updateCaseStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caseID, err := strconv.ParseInt(chi.URLParam(r, "caseID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid case identifier")
		http.Error(w, "invalid case identifier", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CaseService.UpdateStatus(ctx, caseID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCaseStatus):
			log.Err(err).Msg("unknown case status")
			http.Error(w, "unknown case status", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidStatusTransition):
			log.Err(err).Int64("case_id", caseID).Msg("status transition rejected")
			http.Error(w, "status transition not allowed", http.StatusConflict)
			return
		case errors.Is(err, store.ErrCaseNotFound):
			log.Err(err).Int64("case_id", caseID).Msg("case not found")
			http.Error(w, "case not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error updating case status")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Err(err).Msg("encoding updated case failed")
	}
}
