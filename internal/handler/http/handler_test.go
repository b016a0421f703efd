// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wisling/case-portal/internal/service"
	"github.com/wisling/case-portal/models"
)

// withChiParams attaches chi URL parameters to a request built outside the
// router, so handlers and middleware can be probed directly.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// Mock services shared by the handler tests
// ─────────────────────────────────────────────

type mockAccessService struct {
	checkFn func(ctx context.Context, companySlug, requiredPassword string) service.AccessDecision
}

func (m *mockAccessService) CheckAccess(ctx context.Context, companySlug, requiredPassword string) service.AccessDecision {
	if m.checkFn != nil {
		return m.checkFn(ctx, companySlug, requiredPassword)
	}
	return service.AccessDecision{Granted: false, RedirectURL: "/company/" + companySlug + "/login"}
}

type mockPortalService struct {
	loginFn  func(ctx context.Context, companySlug, password, userID, caseID string) error
	extendFn func(ctx context.Context, companySlug string) (bool, error)
	infoFn   func(ctx context.Context, companySlug string) models.SessionInfo

	logouts int
}

func (m *mockPortalService) Login(ctx context.Context, companySlug, password, userID, caseID string) error {
	if m.loginFn != nil {
		return m.loginFn(ctx, companySlug, password, userID, caseID)
	}
	return nil
}

func (m *mockPortalService) Logout(ctx context.Context) {
	m.logouts++
}

func (m *mockPortalService) ExtendSession(ctx context.Context, companySlug string) (bool, error) {
	if m.extendFn != nil {
		return m.extendFn(ctx, companySlug)
	}
	return false, nil
}

func (m *mockPortalService) SessionInfo(ctx context.Context, companySlug string) models.SessionInfo {
	if m.infoFn != nil {
		return m.infoFn(ctx, companySlug)
	}
	return models.SessionInfo{}
}

type mockCaseService struct {
	submitFn       func(ctx context.Context, companySlug, title, description string) (models.Case, string, error)
	getFn          func(ctx context.Context, caseID int64) (models.Case, error)
	listFn         func(ctx context.Context, companySlug string, filter models.CaseFilter) ([]models.Case, error)
	updateStatusFn func(ctx context.Context, caseID int64, next models.CaseStatus) (models.Case, error)
	addMessageFn   func(ctx context.Context, caseID int64, author models.MessageAuthor, body string) (models.CaseMessage, error)
	messagesFn     func(ctx context.Context, caseID int64) ([]models.CaseMessage, error)
}

func (m *mockCaseService) SubmitCase(ctx context.Context, companySlug, title, description string) (models.Case, string, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, companySlug, title, description)
	}
	return models.Case{}, "", nil
}

func (m *mockCaseService) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	if m.getFn != nil {
		return m.getFn(ctx, caseID)
	}
	return models.Case{CaseID: caseID}, nil
}

func (m *mockCaseService) ListCases(ctx context.Context, companySlug string, filter models.CaseFilter) ([]models.Case, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companySlug, filter)
	}
	return nil, nil
}

func (m *mockCaseService) UpdateStatus(ctx context.Context, caseID int64, next models.CaseStatus) (models.Case, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, caseID, next)
	}
	return models.Case{CaseID: caseID, Status: next}, nil
}

func (m *mockCaseService) AddMessage(ctx context.Context, caseID int64, author models.MessageAuthor, body string) (models.CaseMessage, error) {
	if m.addMessageFn != nil {
		return m.addMessageFn(ctx, caseID, author, body)
	}
	return models.CaseMessage{CaseID: caseID, Author: author, Body: body}, nil
}

func (m *mockCaseService) Messages(ctx context.Context, caseID int64) ([]models.CaseMessage, error) {
	if m.messagesFn != nil {
		return m.messagesFn(ctx, caseID)
	}
	return nil, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) Version(ctx context.Context) string {
	return m.version
}
