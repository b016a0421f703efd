// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// panickingSessionStore blows up on every read to exercise the fail-closed
// path of the access check.
type panickingSessionStore struct {
	mockSessionStore
}

func (p *panickingSessionStore) Read(companySlug string) *models.PasswordSession {
	panic("session backend corrupted")
}

func TestCheckAccess_NoSessionDenies(t *testing.T) {
	sessions := &mockSessionStore{
		readFn: func(companySlug string) *models.PasswordSession { return nil },
	}
	svc := NewAccessService(sessions, logger.Nop())

	decision := svc.CheckAccess(context.Background(), "acme", "")

	assert.False(t, decision.Granted)
	assert.Equal(t, "/company/acme/login", decision.RedirectURL)
}

func TestCheckAccess_ValidSessionGrants(t *testing.T) {
	sessions := &mockSessionStore{
		readFn: func(companySlug string) *models.PasswordSession {
			return &models.PasswordSession{Password: "pw", CompanySlug: companySlug}
		},
	}
	svc := NewAccessService(sessions, logger.Nop())

	decision := svc.CheckAccess(context.Background(), "acme", "")

	assert.True(t, decision.Granted)
	assert.Empty(t, decision.RedirectURL)
}

func TestCheckAccess_RequiredPasswordMatch(t *testing.T) {
	sessions := &mockSessionStore{
		readFn: func(companySlug string) *models.PasswordSession {
			return &models.PasswordSession{Password: "stored-pw", CompanySlug: companySlug}
		},
	}
	svc := NewAccessService(sessions, logger.Nop())

	granted := svc.CheckAccess(context.Background(), "acme", "stored-pw")
	assert.True(t, granted.Granted)

	denied := svc.CheckAccess(context.Background(), "acme", "different-pw")
	assert.False(t, denied.Granted)
	assert.Equal(t, "/company/acme/login", denied.RedirectURL)
}

func TestCheckAccess_PanicFailsClosed(t *testing.T) {
	svc := NewAccessService(&panickingSessionStore{}, logger.Nop())

	var decision AccessDecision
	assert.NotPanics(t, func() {
		decision = svc.CheckAccess(context.Background(), "acme", "")
	})

	assert.False(t, decision.Granted)
	assert.Equal(t, "/company/acme/login", decision.RedirectURL)
}
