// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

func newTestCompanyRepo(t *testing.T) (*companyRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &companyRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var companyColumns = []string{"company_id", "slug", "name", "portal_password_hash", "password_salt", "created_at"}

func TestCreateCompany_Success(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	company := models.Company{
		Slug:               "acme",
		Name:               "ACME Inc",
		PortalPasswordHash: []byte("digest"),
		PasswordSalt:       []byte("salt"),
	}

	now := time.Now()
	rows := sqlmock.NewRows(companyColumns).
		AddRow(1, company.Slug, company.Name, company.PortalPasswordHash, company.PasswordSalt, now)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs(company.Slug, company.Name, company.PortalPasswordHash, company.PasswordSalt).
		WillReturnRows(rows)

	created, err := repo.CreateCompany(context.Background(), company)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CompanyID != 1 {
		t.Errorf("expected CompanyID=1, got %d", created.CompanyID)
	}
	if created.Slug != company.Slug {
		t.Errorf("expected slug %s, got %s", company.Slug, created.Slug)
	}
}

func TestCreateCompany_SlugAlreadyTaken(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("INSERT INTO companies").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCompany(context.Background(), models.Company{Slug: "acme"})
	if !errors.Is(err, ErrCompanySlugAlreadyExists) {
		t.Fatalf("expected ErrCompanySlugAlreadyExists, got %v", err)
	}
}

func TestFindCompanyBySlug_Success(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	rows := sqlmock.NewRows(companyColumns).
		AddRow(7, "acme", "ACME Inc", []byte("digest"), []byte("salt"), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs("acme").
		WillReturnRows(rows)

	company, err := repo.FindCompanyBySlug(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.CompanyID != 7 || company.Name != "ACME Inc" {
		t.Errorf("unexpected company: %+v", company)
	}
}

func TestFindCompanyBySlug_NotFound(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM companies").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(companyColumns))

	_, err := repo.FindCompanyBySlug(context.Background(), "ghost")
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
