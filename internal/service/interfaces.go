// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"

	"github.com/wisling/case-portal/models"
)

// AccessDecision is the outcome of an access-guard check.
type AccessDecision struct {
	// Granted reports whether the protected case view may be rendered.
	Granted bool

	// RedirectURL is the company login page to send the visitor to when
	// access is denied.
	RedirectURL string
}

// AccessService gates rendering of protected case views behind a valid
// password session. The check is purely local — no network call, no
// server-side re-authentication of the password.
type AccessService interface {
	// CheckAccess decides whether the visitor may see companySlug's
	// protected case views. When requiredPassword is non-empty, the stored
	// session must additionally carry exactly that password. Any internal
	// failure during the check results in denial (fail closed), never in an
	// error.
	CheckAccess(ctx context.Context, companySlug, requiredPassword string) AccessDecision
}

// PortalService handles the portal password flow: unlocking a company's
// portal, and managing the resulting local session.
type PortalService interface {
	// Login verifies password against companySlug's stored portal password
	// and, on success, persists a fresh password session scoped to the
	// company. userID and caseID carry the case context of the login, when
	// known.
	Login(ctx context.Context, companySlug, password, userID, caseID string) error

	// Logout destroys the current session, whoever it belonged to.
	Logout(ctx context.Context)

	// ExtendSession bumps the current session's timestamp without
	// re-prompting for the password. Returns false when no valid session
	// exists for companySlug.
	ExtendSession(ctx context.Context, companySlug string) (bool, error)

	// SessionInfo reports the current session's validity and remaining
	// window for companySlug.
	SessionInfo(ctx context.Context, companySlug string) models.SessionInfo
}

// CaseService implements the case lifecycle visible from the portal:
// anonymous submission, detail retrieval, status transitions, and the
// reporter/handler message thread.
type CaseService interface {
	// SubmitCase files a new report for companySlug and returns the created
	// case together with the shareable follow-up path, whose user and case
	// identifiers are independently encrypted and URL-encoded.
	SubmitCase(ctx context.Context, companySlug, title, description string) (models.Case, string, error)

	// GetCase returns the case with the given internal identifier.
	GetCase(ctx context.Context, caseID int64) (models.Case, error)

	// ListCases returns companySlug's cases narrowed by filter.
	ListCases(ctx context.Context, companySlug string, filter models.CaseFilter) ([]models.Case, error)

	// UpdateStatus moves a case through its lifecycle, rejecting
	// transitions the lifecycle does not allow.
	UpdateStatus(ctx context.Context, caseID int64, next models.CaseStatus) (models.Case, error)

	// AddMessage appends a message to the case's reporter/handler thread.
	AddMessage(ctx context.Context, caseID int64, author models.MessageAuthor, body string) (models.CaseMessage, error)

	// Messages returns the case's thread in chronological order.
	Messages(ctx context.Context, caseID int64) ([]models.CaseMessage, error)
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	Version(ctx context.Context) string
}

// EventPublisher hands a case event off for asynchronous delivery to the
// case-management backend. Publish must never block the request path; when
// delivery is impossible the event is dropped and logged.
type EventPublisher interface {
	Publish(event models.CaseEvent)
}
