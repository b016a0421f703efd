// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package models

import "time"

// CaseStatus is the lifecycle state of a whistleblower case.
type CaseStatus string

// Case lifecycle states. A case always starts as [CaseStatusNew] and moves
// forward through the lifecycle; see [CaseStatus.CanTransitionTo] for the
// allowed transitions.
const (
	// CaseStatusNew marks a freshly submitted case that nobody has triaged yet.
	CaseStatusNew CaseStatus = "new"

	// CaseStatusInProgress marks a case that a handler has picked up for triage.
	CaseStatusInProgress CaseStatus = "in_progress"

	// CaseStatusOpen marks a triaged case under active investigation.
	CaseStatusOpen CaseStatus = "open"

	// CaseStatusClosed marks a resolved case. Closed is terminal except for
	// re-opening.
	CaseStatusClosed CaseStatus = "closed"
)

// caseTransitions is the allowed forward edges of the case lifecycle.
// Closed cases may be re-opened, everything else moves forward only.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseStatusNew:        {CaseStatusInProgress},
	CaseStatusInProgress: {CaseStatusOpen, CaseStatusClosed},
	CaseStatusOpen:       {CaseStatusClosed},
	CaseStatusClosed:     {CaseStatusOpen},
}

// IsKnown reports whether s is one of the defined lifecycle states.
func (s CaseStatus) IsKnown() bool {
	_, ok := caseTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle transition.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	for _, allowed := range caseTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Case represents a whistleblower report tracked through a status lifecycle.
type Case struct {
	// CaseID is the internal unique identifier of the case. Internal IDs are
	// never exposed verbatim in shareable URLs; they travel as encrypted
	// identifiers instead.
	CaseID int64 `json:"-"`

	// CompanyID is the owning company's internal identifier.
	CompanyID int64 `json:"-"`

	// Reference is the public, human-quotable case reference (a UUID).
	Reference string `json:"reference"`

	// ReporterID is the identifier assigned to the (possibly anonymous)
	// reporter at submission time.
	ReporterID int64 `json:"-"`

	// Title is the short summary supplied by the reporter.
	Title string `json:"title"`

	// Description is the full free-text body of the report.
	Description string `json:"description"`

	// Status is the current lifecycle state of the case.
	Status CaseStatus `json:"status"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last status change or edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Case model.
func (c Case) TableName() string {
	return "cases"
}

// CaseFilter narrows a case listing. Zero values mean "no constraint".
type CaseFilter struct {
	// Status restricts the listing to a single lifecycle state.
	Status CaseStatus

	// Limit caps the number of returned rows; 0 means no cap.
	Limit uint64

	// NewestFirst orders the listing by submission time descending.
	NewestFirst bool
}
