// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import "errors"

// Sentinel errors used by the access-guard middleware when decoding the
// encrypted identifier segments of a protected URL. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingIdentifierSegment is returned when a protected route is hit
	// without both encrypted identifier segments present in the path.
	ErrMissingIdentifierSegment = errors.New("missing encrypted identifier in path")

	// ErrInvalidLink is the generic failure for a link whose identifier
	// segments do not decode or decrypt. Shown to visitors as "invalid or
	// corrupted link".
	ErrInvalidLink = errors.New("invalid or corrupted link")
)
