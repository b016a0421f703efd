// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wisling/case-portal/internal/config"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// webhookNotifier is the HTTP implementation of [CaseEventNotifier].
// Events are POSTed as JSON to the configured endpoint; 5xx responses and
// transport errors are retried with resty's backoff, 4xx responses are not
// (the payload will not get better by resending it).
type webhookNotifier struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// NewWebhookNotifier constructs a [CaseEventNotifier] for cfg. With an empty
// webhook URL the notifier is disabled and every Notify returns
// [ErrNotifierDisabled].
func NewWebhookNotifier(cfg config.Notifier, log *logger.Logger) CaseEventNotifier {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &webhookNotifier{
		client: cli,
		url:    strings.TrimRight(cfg.WebhookURL, "/"),
		logger: log,
	}
}

// Notify implements [CaseEventNotifier].
func (n *webhookNotifier) Notify(ctx context.Context, event models.CaseEvent) error {
	if n.url == "" {
		return ErrNotifierDisabled
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if resp.IsError() {
		return fmt.Errorf("%w: endpoint returned %d", ErrDeliveryFailed, resp.StatusCode())
	}

	n.logger.Debug().
		Str("type", string(event.Type)).
		Str("reference", event.CaseReference).
		Msg("case event delivered")

	return nil
}
