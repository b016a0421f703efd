// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// companyRepository is the PostgreSQL-backed implementation of
// [CompanyRepository]. It handles company registration and slug lookup
// against the "companies" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type companyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCompanyRepository constructs a [CompanyRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCompany persists a new company record and returns the fully
// populated [models.Company] with server-assigned fields (CompanyID,
// CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCompanySlugAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *companyRepository) CreateCompany(ctx context.Context, company models.Company) (models.Company, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCompany, company.Slug, company.Name, company.PortalPasswordHash, company.PasswordSalt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Company{}, ErrCompanySlugAlreadyExists
		default:
			return models.Company{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&company.CompanyID, &company.Slug, &company.Name, &company.PortalPasswordHash, &company.PasswordSalt, &company.CreatedAt); err != nil {
		log.Err(err).Str("func", "*companyRepository.CreateCompany").Msg("error: scanning error")
		return models.Company{}, err
	}

	return company, nil
}

// FindCompanyBySlug looks up the company owning slug.
//
// Returns [ErrCompanyNotFound] when no company is registered under slug.
func (r *companyRepository) FindCompanyBySlug(ctx context.Context, slug string) (models.Company, error) {
	log := logger.FromContext(ctx)

	var company models.Company
	row := r.db.QueryRowContext(ctx, findCompanyBySlug, slug)

	err := row.Scan(&company.CompanyID, &company.Slug, &company.Name, &company.PortalPasswordHash, &company.PasswordSalt, &company.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Company{}, ErrCompanyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*companyRepository.FindCompanyBySlug").Msg("error: scanning error")
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return company, nil
}
