// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package adapter

import "errors"

var (
	// ErrNotifierDisabled is returned when no webhook endpoint is
	// configured and an event delivery is attempted anyway.
	ErrNotifierDisabled = errors.New("case event notifier is disabled")

	// ErrDeliveryFailed is returned when the webhook endpoint keeps
	// rejecting the event after all retries.
	ErrDeliveryFailed = errors.New("case event delivery failed")
)
