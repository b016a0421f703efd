// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"

	"github.com/wisling/case-portal/models"
)

// KeyValueStore is the persistence backend of the password-session slot.
// Implementations must be safe for concurrent use.
//
// Get reports presence explicitly: a missing key is (="", false, nil), not an
// error. Set may fail (full disk, unavailable backend) and that failure must
// reach the caller. Remove of a missing key is a no-op.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// PasswordSessionStore manages the single local "this visitor has unlocked
// company X's portal" credential with time-bounded validity.
//
// Exactly one session slot exists: Store unconditionally overwrites whatever
// was there before. Expiry is lazy — it is observed on the next Read, never
// via a timer.
type PasswordSessionStore interface {
	// Store persists a new session for companySlug, overwriting any existing
	// session. userID and caseID are informational context; pass "" when
	// unknown. A backend write failure wraps [ErrStorageWrite] and
	// propagates to the caller.
	Store(password, companySlug, userID, caseID string) error

	// Read returns the current session when it is valid for companySlug,
	// or nil when no session is stored, the stored data is unparseable, the
	// session has expired, or it belongs to a different company. All
	// nil-producing conditions except "nothing stored" also delete the
	// stale entry. Read never returns an error; internal failures degrade
	// to nil plus cleanup.
	Read(companySlug string) *models.PasswordSession

	// IsValid reports whether Read(companySlug) would return a session.
	IsValid(companySlug string) bool

	// Clear unconditionally removes the stored session. Idempotent; never
	// fails.
	Clear()

	// Refresh re-stores the current session with a bumped timestamp (same
	// password, slug and ids) and returns true, or returns false without
	// side effects when no valid session exists for companySlug. A backend
	// write failure during the re-store wraps [ErrStorageWrite].
	Refresh(companySlug string) (bool, error)

	// SessionInfo returns a derived read-only view of the slot for
	// companySlug, including the remaining validity window when valid.
	SessionInfo(companySlug string) models.SessionInfo
}

// CompanyRepository looks up and registers company portals.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company models.Company) (models.Company, error)
	FindCompanyBySlug(ctx context.Context, slug string) (models.Company, error)
}

// CaseRepository persists whistleblower cases and their message threads.
type CaseRepository interface {
	CreateCase(ctx context.Context, c models.Case) (models.Case, error)
	FindCaseByID(ctx context.Context, caseID int64) (models.Case, error)
	ListCases(ctx context.Context, companyID int64, filter models.CaseFilter) ([]models.Case, error)
	UpdateCaseStatus(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error)

	AddMessage(ctx context.Context, message models.CaseMessage) (models.CaseMessage, error)
	ListMessages(ctx context.Context, caseID int64) ([]models.CaseMessage, error)
}
