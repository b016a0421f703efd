// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package models

import "time"

// CaseEventType identifies what happened to a case.
type CaseEventType string

const (
	// CaseEventSubmitted fires when a new case is submitted through a portal.
	CaseEventSubmitted CaseEventType = "case_submitted"

	// CaseEventStatusChanged fires when a case moves through its lifecycle.
	CaseEventStatusChanged CaseEventType = "case_status_changed"

	// CaseEventMessageAdded fires when a reporter or handler posts a message.
	CaseEventMessageAdded CaseEventType = "case_message_added"
)

// CaseEvent is the payload delivered to the case-management backend's webhook
// whenever something happens to a case on the portal side. Delivery is
// best-effort and asynchronous; the event carries enough context to be
// processed without a follow-up query.
type CaseEvent struct {
	// Type identifies what happened.
	Type CaseEventType `json:"type"`

	// CompanySlug is the portal the event originated from.
	CompanySlug string `json:"company_slug"`

	// CaseReference is the public reference of the affected case.
	CaseReference string `json:"case_reference"`

	// Status is the case status after the event, when relevant.
	Status CaseStatus `json:"status,omitempty"`

	// OccurredAt is the event timestamp.
	OccurredAt time.Time `json:"occurred_at"`
}
