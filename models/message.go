// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package models

import "time"

// MessageAuthor identifies which side of a case conversation wrote a message.
type MessageAuthor string

const (
	// MessageAuthorReporter marks a message written by the (anonymous) reporter.
	MessageAuthorReporter MessageAuthor = "reporter"

	// MessageAuthorHandler marks a message written by a case handler.
	MessageAuthorHandler MessageAuthor = "handler"
)

// IsKnown reports whether a is one of the defined author roles.
func (a MessageAuthor) IsKnown() bool {
	return a == MessageAuthorReporter || a == MessageAuthorHandler
}

// CaseMessage is a single entry in the reporter/handler exchange on a case.
type CaseMessage struct {
	// MessageID is the internal unique identifier of the message.
	MessageID int64 `json:"-"`

	// CaseID is the internal identifier of the case this message belongs to.
	CaseID int64 `json:"-"`

	// Author identifies who wrote the message.
	Author MessageAuthor `json:"author"`

	// Body is the message text.
	Body string `json:"body"`

	// CreatedAt is the timestamp when the message was posted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CaseMessage model.
func (m CaseMessage) TableName() string {
	return "case_messages"
}
