// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"
	"fmt"

	"github.com/wisling/case-portal/internal/crypto"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/store"
	"github.com/wisling/case-portal/models"
)

// portalService is the concrete implementation of [PortalService].
// It is the only place that validates portal passwords against the server;
// everything downstream trusts the session the login stored.
type portalService struct {
	companyRepository store.CompanyRepository
	sessions          store.PasswordSessionStore
	hasher            crypto.PasswordHasher
	logger            *logger.Logger
}

// NewPortalService constructs a [PortalService] wired to the company
// repository, the session store, and the password hasher.
func NewPortalService(companyRepository store.CompanyRepository, sessions store.PasswordSessionStore, hasher crypto.PasswordHasher, logger *logger.Logger) PortalService {
	return &portalService{
		companyRepository: companyRepository,
		sessions:          sessions,
		hasher:            hasher,
		logger:            logger,
	}
}

// Login implements [PortalService].
//
// Returns:
//   - ErrInvalidDataProvided if companySlug or password is empty.
//   - store.ErrCompanyNotFound if no company owns companySlug.
//   - ErrWrongPortalPassword if the password does not verify.
//   - A wrapped store.ErrStorageWrite if persisting the session fails.
func (p *portalService) Login(ctx context.Context, companySlug, password, userID, caseID string) error {
	log := logger.FromContext(ctx)

	if companySlug == "" || password == "" {
		log.Error().Str("company_slug", companySlug).Msg("invalid login data provided")
		return ErrInvalidDataProvided
	}

	company, err := p.companyRepository.FindCompanyBySlug(ctx, companySlug)
	if err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("company lookup failed")
		return fmt.Errorf("company lookup failed: %w", err)
	}

	if !p.hasher.VerifyPortalPassword(password, company.PasswordSalt, company.PortalPasswordHash) {
		log.Warn().Str("company_slug", companySlug).Msg("portal password verification failed")
		return ErrWrongPortalPassword
	}

	if err := p.sessions.Store(password, companySlug, userID, caseID); err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("storing session failed")
		return fmt.Errorf("storing session failed: %w", err)
	}

	log.Info().Str("company_slug", companySlug).Msg("portal unlocked")
	return nil
}

// Logout implements [PortalService].
func (p *portalService) Logout(ctx context.Context) {
	logger.FromContext(ctx).Debug().Msg("clearing portal session")
	p.sessions.Clear()
}

// ExtendSession implements [PortalService].
func (p *portalService) ExtendSession(ctx context.Context, companySlug string) (bool, error) {
	extended, err := p.sessions.Refresh(companySlug)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("company_slug", companySlug).Msg("session refresh failed")
		return false, fmt.Errorf("session refresh failed: %w", err)
	}

	return extended, nil
}

// SessionInfo implements [PortalService].
func (p *portalService) SessionInfo(ctx context.Context, companySlug string) models.SessionInfo {
	return p.sessions.SessionInfo(companySlug)
}
