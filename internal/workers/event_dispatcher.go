// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package workers

import (
	"context"
	"sync"

	"github.com/wisling/case-portal/internal/adapter"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// defaultEventQueueSize bounds the in-process event queue when no size is
// configured.
const defaultEventQueueSize = 256

// EventDispatcher decouples the request path from webhook delivery: Publish
// enqueues without blocking, a single background goroutine drains the queue
// through the notifier. It implements both [Worker] and the service layer's
// EventPublisher.
type EventDispatcher struct {
	notifier adapter.CaseEventNotifier
	queue    chan models.CaseEvent
	logger   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEventDispatcher constructs an [EventDispatcher] with a queue of the
// given size (a default applies when size is not positive).
func NewEventDispatcher(notifier adapter.CaseEventNotifier, size int, log *logger.Logger) *EventDispatcher {
	if size <= 0 {
		size = defaultEventQueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &EventDispatcher{
		notifier: notifier,
		queue:    make(chan models.CaseEvent, size),
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Publish enqueues an event for delivery. When the queue is full the event
// is dropped and logged; the request path never waits on the backend.
func (d *EventDispatcher) Publish(event models.CaseEvent) {
	select {
	case d.queue <- event:
	default:
		d.logger.Warn().
			Str("type", string(event.Type)).
			Str("reference", event.CaseReference).
			Msg("event queue full, dropping case event")
	}
}

// Run implements [Worker]. It starts the delivery goroutine and returns.
func (d *EventDispatcher) Run() {
	d.wg.Add(1)
	go d.deliverLoop()
}

// Shutdown stops the delivery loop. Events still queued are dropped.
func (d *EventDispatcher) Shutdown() {
	d.cancel()
	d.wg.Wait()
}

func (d *EventDispatcher) deliverLoop() {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			return
		case event := <-d.queue:
			if err := d.notifier.Notify(d.ctx, event); err != nil {
				// Best-effort delivery: failures are logged, never retried
				// beyond what the notifier itself does.
				d.logger.Err(err).
					Str("type", string(event.Type)).
					Str("reference", event.CaseReference).
					Msg("case event delivery failed")
			}
		}
	}
}
