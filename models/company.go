// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package models

import "time"

// Company represents an organization that operates a public reporting portal.
// The Slug is the URL-safe identifier embedded in every portal route
// (e.g. /company/{slug}/login) and must be unique across the platform.
// Credential fields must never be exposed outside trusted boundaries.
type Company struct {
	// CompanyID is the internal unique identifier of the company.
	// It is not exposed via JSON and is used only at the persistence layer.
	CompanyID int64 `json:"-"`

	// Slug is the URL-safe identifier of the company's reporting portal.
	Slug string `json:"slug"`

	// Name is the display name of the company.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PortalPasswordHash stores the Argon2id digest of the portal password.
	// This value MUST be a derived value, never plaintext.
	PortalPasswordHash []byte `json:"-"`

	// PasswordSalt is the per-company salt used when deriving
	// PortalPasswordHash.
	PasswordSalt []byte `json:"-"`

	// CreatedAt is the timestamp when the company was registered.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}
