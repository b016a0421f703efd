// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package service

import (
	"context"

	"github.com/wisling/case-portal/models"
)

// ─────────────────────────────────────────────
// Mock: store.PasswordSessionStore
// ─────────────────────────────────────────────

type mockSessionStore struct {
	storeFn   func(password, companySlug, userID, caseID string) error
	readFn    func(companySlug string) *models.PasswordSession
	refreshFn func(companySlug string) (bool, error)
	infoFn    func(companySlug string) models.SessionInfo

	cleared int
}

func (m *mockSessionStore) Store(password, companySlug, userID, caseID string) error {
	if m.storeFn != nil {
		return m.storeFn(password, companySlug, userID, caseID)
	}
	return nil
}

func (m *mockSessionStore) Read(companySlug string) *models.PasswordSession {
	if m.readFn != nil {
		return m.readFn(companySlug)
	}
	return nil
}

func (m *mockSessionStore) IsValid(companySlug string) bool {
	return m.Read(companySlug) != nil
}

func (m *mockSessionStore) Clear() {
	m.cleared++
}

func (m *mockSessionStore) Refresh(companySlug string) (bool, error) {
	if m.refreshFn != nil {
		return m.refreshFn(companySlug)
	}
	return false, nil
}

func (m *mockSessionStore) SessionInfo(companySlug string) models.SessionInfo {
	if m.infoFn != nil {
		return m.infoFn(companySlug)
	}
	return models.SessionInfo{}
}

// ─────────────────────────────────────────────
// Mock: store.CompanyRepository
// ─────────────────────────────────────────────

type mockCompanyRepository struct {
	createFn func(ctx context.Context, company models.Company) (models.Company, error)
	findFn   func(ctx context.Context, slug string) (models.Company, error)
}

func (m *mockCompanyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	return company, nil
}

func (m *mockCompanyRepository) FindCompanyBySlug(ctx context.Context, slug string) (models.Company, error) {
	if m.findFn != nil {
		return m.findFn(ctx, slug)
	}
	return models.Company{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.CaseRepository
// ─────────────────────────────────────────────

type mockCaseRepository struct {
	createFn       func(ctx context.Context, c models.Case) (models.Case, error)
	findFn         func(ctx context.Context, caseID int64) (models.Case, error)
	listFn         func(ctx context.Context, companyID int64, filter models.CaseFilter) ([]models.Case, error)
	updateStatusFn func(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error)
	addMessageFn   func(ctx context.Context, message models.CaseMessage) (models.CaseMessage, error)
	listMessagesFn func(ctx context.Context, caseID int64) ([]models.CaseMessage, error)
}

func (m *mockCaseRepository) CreateCase(ctx context.Context, c models.Case) (models.Case, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.CaseID = 1
	return c, nil
}

func (m *mockCaseRepository) FindCaseByID(ctx context.Context, caseID int64) (models.Case, error) {
	if m.findFn != nil {
		return m.findFn(ctx, caseID)
	}
	return models.Case{CaseID: caseID}, nil
}

func (m *mockCaseRepository) ListCases(ctx context.Context, companyID int64, filter models.CaseFilter) ([]models.Case, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID, filter)
	}
	return nil, nil
}

func (m *mockCaseRepository) UpdateCaseStatus(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, caseID, status)
	}
	return models.Case{CaseID: caseID, Status: status}, nil
}

func (m *mockCaseRepository) AddMessage(ctx context.Context, message models.CaseMessage) (models.CaseMessage, error) {
	if m.addMessageFn != nil {
		return m.addMessageFn(ctx, message)
	}
	message.MessageID = 1
	return message, nil
}

func (m *mockCaseRepository) ListMessages(ctx context.Context, caseID int64) ([]models.CaseMessage, error) {
	if m.listMessagesFn != nil {
		return m.listMessagesFn(ctx, caseID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: EventPublisher
// ─────────────────────────────────────────────

type mockEventPublisher struct {
	events []models.CaseEvent
}

func (m *mockEventPublisher) Publish(event models.CaseEvent) {
	m.events = append(m.events, event)
}
