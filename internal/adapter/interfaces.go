// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

// Package adapter provides outbound transport to the case-management
// backend.
//
// The primary abstraction is [CaseEventNotifier], which decouples event
// producers from the delivery protocol. The package ships an HTTP webhook
// implementation ([NewWebhookNotifier]) built on resty.
package adapter

import (
	"context"

	"github.com/wisling/case-portal/models"
)

// CaseEventNotifier delivers case events to the case-management backend.
// Implementations are responsible for serialisation, retries, and timeouts.
type CaseEventNotifier interface {
	// Notify delivers a single event. It blocks until the event is
	// delivered, retries are exhausted, or ctx is cancelled. Delivery
	// failure is an error but never fatal to the caller: portal operation
	// does not depend on the backend being reachable.
	Notify(ctx context.Context, event models.CaseEvent) error
}
