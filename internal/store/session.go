// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// sessionSlotKey is the fixed key of the single password-session slot in the
// key-value backend. The slot is not keyed per company; company scoping is
// checked against the stored payload on every read.
const sessionSlotKey = "portal_password_session"

// SessionTTL is how long a password session stays valid after creation or
// refresh. Fixed, not configurable.
const SessionTTL = 24 * time.Hour

// passwordSessionStore is the private implementation of
// [PasswordSessionStore] on top of an injectable [KeyValueStore].
type passwordSessionStore struct {
	kv     KeyValueStore
	logger *logger.Logger

	// now is the clock used for timestamps and expiry checks. Injectable so
	// tests can walk time across the 24h boundary.
	now func() time.Time
}

// NewPasswordSessionStore constructs a [PasswordSessionStore] persisting
// through kv and using the wall clock.
func NewPasswordSessionStore(kv KeyValueStore, log *logger.Logger) PasswordSessionStore {
	log.Debug().Msg("creating password session store")
	return &passwordSessionStore{
		kv:     kv,
		logger: log,
		now:    time.Now,
	}
}

// NewPasswordSessionStoreWithClock is [NewPasswordSessionStore] with an
// explicit clock, for tests.
func NewPasswordSessionStoreWithClock(kv KeyValueStore, log *logger.Logger, now func() time.Time) PasswordSessionStore {
	return &passwordSessionStore{
		kv:     kv,
		logger: log,
		now:    now,
	}
}

// Store implements [PasswordSessionStore]. Whatever session existed before is
// gone after this call, regardless of whose it was.
func (s *passwordSessionStore) Store(password, companySlug, userID, caseID string) error {
	session := models.PasswordSession{
		Password:    password,
		Timestamp:   s.now().UnixMilli(),
		CompanySlug: companySlug,
		UserID:      userID,
		CaseID:      caseID,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: marshal session: %w", ErrStorageWrite, err)
	}

	if err := s.kv.Set(sessionSlotKey, string(payload)); err != nil {
		s.logger.Err(err).Str("company_slug", companySlug).Msg("session slot write failed")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

// Read implements [PasswordSessionStore]. Every condition that makes the slot
// useless for companySlug — corrupt payload, expiry, or a slug mismatch —
// also removes the entry, so the next read starts from a clean slot.
func (s *passwordSessionStore) Read(companySlug string) *models.PasswordSession {
	payload, ok, err := s.kv.Get(sessionSlotKey)
	if err != nil {
		// A backend read failure must not leak out of Read: log, attempt
		// cleanup, and report "no session".
		s.logger.Err(err).Msg("session slot read failed")
		s.remove()
		return nil
	}
	if !ok {
		return nil
	}

	var session models.PasswordSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		s.logger.Err(err).Msg("session slot holds unparseable data, clearing")
		s.remove()
		return nil
	}

	if s.expired(session) {
		s.logger.Debug().Str("company_slug", session.CompanySlug).Msg("session expired, clearing")
		s.remove()
		return nil
	}

	if session.CompanySlug != companySlug {
		// A session for company A is never valid for company B. The slot is
		// cleared eagerly: only one company's session can exist meaningfully.
		s.logger.Debug().
			Str("stored_slug", session.CompanySlug).
			Str("requested_slug", companySlug).
			Msg("session belongs to another company, clearing")
		s.remove()
		return nil
	}

	return &session
}

// IsValid implements [PasswordSessionStore].
func (s *passwordSessionStore) IsValid(companySlug string) bool {
	return s.Read(companySlug) != nil
}

// Clear implements [PasswordSessionStore].
func (s *passwordSessionStore) Clear() {
	s.remove()
}

// Refresh implements [PasswordSessionStore]. The stored password, slug and
// case context survive unchanged; only the timestamp moves.
func (s *passwordSessionStore) Refresh(companySlug string) (bool, error) {
	session := s.Read(companySlug)
	if session == nil {
		return false, nil
	}

	if err := s.Store(session.Password, session.CompanySlug, session.UserID, session.CaseID); err != nil {
		return false, err
	}

	return true, nil
}

// SessionInfo implements [PasswordSessionStore].
func (s *passwordSessionStore) SessionInfo(companySlug string) models.SessionInfo {
	session := s.Read(companySlug)
	if session == nil {
		return models.SessionInfo{IsValid: false}
	}

	elapsed := s.now().UnixMilli() - session.Timestamp
	remaining := SessionTTL.Milliseconds() - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return models.SessionInfo{
		IsValid:         true,
		UserID:          session.UserID,
		CaseID:          session.CaseID,
		TimeRemainingMS: remaining,
	}
}

// expired reports whether session's age strictly exceeds [SessionTTL].
// A session aged exactly 24h is still valid.
func (s *passwordSessionStore) expired(session models.PasswordSession) bool {
	age := s.now().UnixMilli() - session.Timestamp
	return age > SessionTTL.Milliseconds()
}

// remove deletes the slot, swallowing backend errors: cleanup is best-effort
// and must never turn a read into a failure.
func (s *passwordSessionStore) remove() {
	if err := s.kv.Remove(sessionSlotKey); err != nil {
		s.logger.Err(err).Msg("session slot cleanup failed")
	}
}
