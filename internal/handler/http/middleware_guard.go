// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/utils"
)

// requiredPasswordHeader optionally carries the password the caller captured
// when entering the protected route. When present, the guard additionally
// requires the stored session to hold exactly this password.
const requiredPasswordHeader = "X-Portal-Password"

// guard is the HTTP middleware that gates protected case views.
//
// It decodes and decrypts the two encrypted identifier segments of the URL,
// consults the access service for a valid password session scoped to the
// company slug in the path, and — on success — stores the plaintext reporter
// and case IDs in the request context under [utils.ReporterIDCtxKey] and
// [utils.CaseIDCtxKey] before delegating to the next handler.
//
// Outcomes:
//   - Either identifier segment missing, undecodable, or undecryptable →
//     HTTP 404 with an "invalid or corrupted link" JSON body. A broken link
//     reveals nothing about whether the case exists.
//   - No valid session (absent, expired, wrong company, password mismatch) →
//     HTTP 303 redirect to /company/{slug}/login.
//   - Check succeeds → plaintext IDs in context, next handler runs.
//
// The guard itself performs no network call; it is purely a local gate over
// the session slot and fails closed on any ambiguity.
func (h *Handler) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		slug := chi.URLParam(r, "slug")

		reporterID, err := h.decodeIdentifierSegment(chi.URLParam(r, "userID"))
		if err != nil {
			log.Err(err).Str("company_slug", slug).Msg("user identifier segment rejected")
			writeInvalidLink(w)
			return
		}

		caseID, err := h.decodeIdentifierSegment(chi.URLParam(r, "caseID"))
		if err != nil {
			log.Err(err).Str("company_slug", slug).Msg("case identifier segment rejected")
			writeInvalidLink(w)
			return
		}

		requiredPassword := r.Header.Get(requiredPasswordHeader)

		decision := h.services.AccessService.CheckAccess(r.Context(), slug, requiredPassword)
		if !decision.Granted {
			log.Debug().Str("company_slug", slug).Msg("access denied, redirecting to portal login")
			http.Redirect(w, r, decision.RedirectURL, http.StatusSeeOther)
			return
		}

		// Store the decrypted IDs in the context so that downstream handlers
		// can retrieve them without touching the codec again.
		ctx := context.WithValue(r.Context(), utils.ReporterIDCtxKey, reporterID)
		ctx = context.WithValue(ctx, utils.CaseIDCtxKey, caseID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// decodeIdentifierSegment turns one encrypted URL path segment back into a
// plaintext identifier.
//
// Routers differ in whether they hand path parameters over already
// percent-decoded. A segment that still contains a literal '%' has not been
// decoded yet and is percent-decoded here first; the codec then performs its
// own decode+decrypt on the result.
func (h *Handler) decodeIdentifierSegment(segment string) (string, error) {
	if segment == "" {
		return "", ErrMissingIdentifierSegment
	}

	if strings.Contains(segment, "%") {
		decoded, err := h.codec.DecodeFromURL(segment)
		if err != nil {
			return "", err
		}
		return h.codec.Decrypt(decoded)
	}

	return h.codec.Decrypt(segment)
}

// writeInvalidLink renders the visitor-facing "invalid or corrupted link"
// response. Deliberately a 404: the guard does not distinguish a tampered
// link from a link to nothing.
func writeInvalidLink(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": ErrInvalidLink.Error(),
	})
}
