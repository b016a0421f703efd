// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package models

// PasswordSession is the locally persisted record that a visitor has unlocked
// a company's case portal with a given password.
//
// Exactly one session exists at a time: the store keeps it in a single fixed
// slot and every new session overwrites the previous one entirely. The JSON
// field names are part of the on-disk format of that slot and must stay
// stable across releases.
//
// The session is a local gate only. The password it carries was validated
// server-side once, at login time; the session itself is never re-checked
// against the server.
type PasswordSession struct {
	// Password is the plaintext credential the visitor supplied to unlock
	// the portal. Kept verbatim so the access guard can perform an exact
	// match against a caller-supplied password.
	Password string `json:"password"`

	// Timestamp is the creation (or last refresh) time of the session in
	// milliseconds since the Unix epoch. Expiry is computed lazily from
	// this value on every read.
	Timestamp int64 `json:"timestamp"`

	// CompanySlug is the company scope this session is valid for. A session
	// for one company is never valid for another, regardless of age.
	CompanySlug string `json:"companySlug"`

	// UserID is the case context the session was created for. Informational;
	// not required for validity.
	UserID string `json:"userId,omitempty"`

	// CaseID is the case context the session was created for. Informational;
	// not required for validity.
	CaseID string `json:"caseId,omitempty"`
}

// SessionInfo is a derived, read-only view of the current session slot for
// one company scope.
type SessionInfo struct {
	// IsValid reports whether a non-expired session exists for the queried
	// company slug.
	IsValid bool `json:"is_valid"`

	// UserID echoes the session's case context when the session is valid.
	UserID string `json:"user_id,omitempty"`

	// CaseID echoes the session's case context when the session is valid.
	CaseID string `json:"case_id,omitempty"`

	// TimeRemainingMS is the number of milliseconds until the session
	// expires. Present only when IsValid is true.
	TimeRemainingMS int64 `json:"time_remaining_ms,omitempty"`
}
