// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCompanySlug = errors.New("company slug is required")
	ErrEmptyTitle       = errors.New("case title is required")
	ErrEmptyDescription = errors.New("case description is required")
	ErrInvalidStatus    = errors.New("invalid case status")
	ErrEmptyMessageBody = errors.New("message body is required")
	ErrUnknownAuthor    = errors.New("unknown message author")
	ErrInvalidCaseID    = errors.New("invalid case ID")
	ErrEmptyPassword    = errors.New("portal password is required")
)
