// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPortalPassword = errors.New("wrong portal password")

	ErrUnknownCaseStatus        = errors.New("unknown case status")
	ErrInvalidStatusTransition  = errors.New("case status transition is not allowed")
	ErrUnknownMessageAuthor     = errors.New("unknown message author role")
	ErrShareableLinkUnavailable = errors.New("could not build shareable case link")
)
