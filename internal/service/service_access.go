// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"
	"fmt"

	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/store"
)

// accessService is the concrete implementation of [AccessService].
//
// It is a local-storage gate only: it trusts that some earlier flow (the
// portal login) validated the password server-side before the session was
// stored, and merely checks that a matching, unexpired session still exists.
type accessService struct {
	sessions store.PasswordSessionStore
	logger   *logger.Logger
}

// NewAccessService constructs an [AccessService] gating on the given session
// store.
func NewAccessService(sessions store.PasswordSessionStore, logger *logger.Logger) AccessService {
	return &accessService{
		sessions: sessions,
		logger:   logger,
	}
}

// CheckAccess implements [AccessService].
//
// Decision rules:
//   - no session valid for companySlug → deny;
//   - requiredPassword set and different from the stored one → deny;
//   - otherwise → grant.
//
// A panic anywhere in the check is caught, logged, and turned into a denial:
// ambiguity never opens the gate.
func (a *accessService) CheckAccess(ctx context.Context, companySlug, requiredPassword string) (decision AccessDecision) {
	log := logger.FromContext(ctx)

	redirect := loginRedirectURL(companySlug)
	decision = AccessDecision{Granted: false, RedirectURL: redirect}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("company_slug", companySlug).Msg("access check panicked, denying")
			decision = AccessDecision{Granted: false, RedirectURL: redirect}
		}
	}()

	session := a.sessions.Read(companySlug)
	if session == nil {
		log.Debug().Str("company_slug", companySlug).Msg("no valid session, denying access")
		return decision
	}

	if requiredPassword != "" && session.Password != requiredPassword {
		log.Debug().Str("company_slug", companySlug).Msg("session password mismatch, denying access")
		return decision
	}

	decision = AccessDecision{Granted: true, RedirectURL: ""}
	return decision
}

// loginRedirectURL is the company login page a denied visitor is sent to.
func loginRedirectURL(companySlug string) string {
	return fmt.Sprintf("/company/%s/login", companySlug)
}
