// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/wisling/case-portal/internal/crypto"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/internal/store"
	"github.com/wisling/case-portal/internal/validators"
	"github.com/wisling/case-portal/models"
)

// caseService is the concrete implementation of [CaseService].
type caseService struct {
	caseRepository    store.CaseRepository
	companyRepository store.CompanyRepository
	codec             crypto.IdentifierCodec
	events            EventPublisher
	validator         validators.Validator
	logger            *logger.Logger
}

// NewCaseService constructs a [CaseService] wired to the repositories, the
// identifier codec used for shareable links, and the event publisher.
func NewCaseService(caseRepository store.CaseRepository, companyRepository store.CompanyRepository, codec crypto.IdentifierCodec, events EventPublisher, logger *logger.Logger) CaseService {
	return &caseService{
		caseRepository:    caseRepository,
		companyRepository: companyRepository,
		codec:             codec,
		events:            events,
		validator:         validators.NewCaseValidator(),
		logger:            logger,
	}
}

// SubmitCase implements [CaseService].
//
// The reporter gets a random pseudonymous identifier; no account exists for
// them anywhere. The returned share path embeds the reporter and case IDs as
// two independently encrypted, URL-encoded segments:
//
//	/company/{slug}/case-details/{encUserID}/{encCaseID}
//
// Returns:
//   - ErrInvalidDataProvided if title or description is empty.
//   - store.ErrCompanyNotFound (wrapped) if companySlug is unknown.
//   - ErrShareableLinkUnavailable (wrapped) if encrypting either ID fails;
//     the case is already persisted at that point.
func (s *caseService) SubmitCase(ctx context.Context, companySlug, title, description string) (models.Case, string, error) {
	log := logger.FromContext(ctx)

	draft := models.Case{Title: title, Description: description}
	if err := s.validator.Validate(ctx, draft, validators.FieldTitle, validators.FieldDescription); err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("invalid case data provided")
		return models.Case{}, "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	company, err := s.companyRepository.FindCompanyBySlug(ctx, companySlug)
	if err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("company lookup failed")
		return models.Case{}, "", fmt.Errorf("company lookup failed: %w", err)
	}

	reporterID, err := pseudonymousReporterID()
	if err != nil {
		log.Err(err).Msg("generating reporter id failed")
		return models.Case{}, "", fmt.Errorf("generating reporter id failed: %w", err)
	}

	created, err := s.caseRepository.CreateCase(ctx, models.Case{
		CompanyID:   company.CompanyID,
		Reference:   uuid.NewString(),
		ReporterID:  reporterID,
		Title:       title,
		Description: description,
		Status:      models.CaseStatusNew,
	})
	if err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("case creation ended with error")
		return models.Case{}, "", fmt.Errorf("case creation ended with error: %w", err)
	}

	sharePath, err := s.sharePath(companySlug, created.ReporterID, created.CaseID)
	if err != nil {
		log.Err(err).Str("reference", created.Reference).Msg("building shareable link failed")
		return models.Case{}, "", fmt.Errorf("%w: %w", ErrShareableLinkUnavailable, err)
	}

	s.events.Publish(models.CaseEvent{
		Type:          models.CaseEventSubmitted,
		CompanySlug:   companySlug,
		CaseReference: created.Reference,
		Status:        created.Status,
		OccurredAt:    time.Now(),
	})

	log.Info().Str("reference", created.Reference).Str("company_slug", companySlug).Msg("case submitted")
	return created, sharePath, nil
}

// GetCase implements [CaseService].
func (s *caseService) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	found, err := s.caseRepository.FindCaseByID(ctx, caseID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Msg("case lookup failed")
		return models.Case{}, fmt.Errorf("case lookup failed: %w", err)
	}

	return found, nil
}

// ListCases implements [CaseService].
func (s *caseService) ListCases(ctx context.Context, companySlug string, filter models.CaseFilter) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	if filter.Status != "" && !filter.Status.IsKnown() {
		return nil, ErrUnknownCaseStatus
	}

	company, err := s.companyRepository.FindCompanyBySlug(ctx, companySlug)
	if err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("company lookup failed")
		return nil, fmt.Errorf("company lookup failed: %w", err)
	}

	cases, err := s.caseRepository.ListCases(ctx, company.CompanyID, filter)
	if err != nil {
		log.Err(err).Str("company_slug", companySlug).Msg("case listing failed")
		return nil, fmt.Errorf("case listing failed: %w", err)
	}

	return cases, nil
}

// UpdateStatus implements [CaseService].
//
// Returns:
//   - ErrUnknownCaseStatus if next is not a defined lifecycle state.
//   - ErrInvalidStatusTransition if the lifecycle forbids current → next.
//   - store.ErrCaseNotFound (wrapped) if the case does not exist.
func (s *caseService) UpdateStatus(ctx context.Context, caseID int64, next models.CaseStatus) (models.Case, error) {
	log := logger.FromContext(ctx)

	if !next.IsKnown() {
		return models.Case{}, ErrUnknownCaseStatus
	}

	current, err := s.caseRepository.FindCaseByID(ctx, caseID)
	if err != nil {
		log.Err(err).Int64("case_id", caseID).Msg("case lookup failed")
		return models.Case{}, fmt.Errorf("case lookup failed: %w", err)
	}

	if !current.Status.CanTransitionTo(next) {
		log.Warn().
			Int64("case_id", caseID).
			Str("from", string(current.Status)).
			Str("to", string(next)).
			Msg("rejected case status transition")
		return models.Case{}, ErrInvalidStatusTransition
	}

	updated, err := s.caseRepository.UpdateCaseStatus(ctx, caseID, next)
	if err != nil {
		log.Err(err).Int64("case_id", caseID).Msg("case status update failed")
		return models.Case{}, fmt.Errorf("case status update failed: %w", err)
	}

	s.events.Publish(models.CaseEvent{
		Type:          models.CaseEventStatusChanged,
		CaseReference: updated.Reference,
		Status:        updated.Status,
		OccurredAt:    time.Now(),
	})

	return updated, nil
}

// AddMessage implements [CaseService].
//
// Returns:
//   - ErrUnknownMessageAuthor if author is not a defined role.
//   - ErrInvalidDataProvided if body is empty.
//   - store.ErrCaseNotFound (wrapped) if the case does not exist.
func (s *caseService) AddMessage(ctx context.Context, caseID int64, author models.MessageAuthor, body string) (models.CaseMessage, error) {
	log := logger.FromContext(ctx)

	draft := models.CaseMessage{CaseID: caseID, Author: author, Body: body}
	if err := s.validator.Validate(ctx, draft, validators.FieldAuthor, validators.FieldBody); err != nil {
		if errors.Is(err, validators.ErrUnknownAuthor) {
			return models.CaseMessage{}, fmt.Errorf("%w: %w", ErrUnknownMessageAuthor, err)
		}
		return models.CaseMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	parent, err := s.caseRepository.FindCaseByID(ctx, caseID)
	if err != nil {
		log.Err(err).Int64("case_id", caseID).Msg("case lookup failed")
		return models.CaseMessage{}, fmt.Errorf("case lookup failed: %w", err)
	}

	message, err := s.caseRepository.AddMessage(ctx, models.CaseMessage{
		CaseID: caseID,
		Author: author,
		Body:   body,
	})
	if err != nil {
		log.Err(err).Int64("case_id", caseID).Msg("adding message failed")
		return models.CaseMessage{}, fmt.Errorf("adding message failed: %w", err)
	}

	s.events.Publish(models.CaseEvent{
		Type:          models.CaseEventMessageAdded,
		CaseReference: parent.Reference,
		OccurredAt:    time.Now(),
	})

	return message, nil
}

// Messages implements [CaseService].
func (s *caseService) Messages(ctx context.Context, caseID int64) ([]models.CaseMessage, error) {
	messages, err := s.caseRepository.ListMessages(ctx, caseID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("case_id", caseID).Msg("listing messages failed")
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}

	return messages, nil
}

// sharePath builds the follow-up link path. The two IDs are encrypted
// independently so neither segment reveals anything about the other.
func (s *caseService) sharePath(companySlug string, reporterID, caseID int64) (string, error) {
	encUser, err := s.codec.EncryptAndEncodeID(fmt.Sprintf("%d", reporterID))
	if err != nil {
		return "", err
	}

	encCase, err := s.codec.EncryptAndEncodeID(fmt.Sprintf("%d", caseID))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/company/%s/case-details/%s/%s", companySlug, encUser, encCase), nil
}

// pseudonymousReporterID draws a random positive int64 from the OS CSPRNG.
func pseudonymousReporterID() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, err
	}

	return n.Int64(), nil
}
