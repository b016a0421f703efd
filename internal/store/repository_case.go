// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/models"
)

// caseRepository is the PostgreSQL-backed implementation of [CaseRepository].
// It persists whistleblower cases and their message threads against the
// "cases" and "case_messages" tables.
type caseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCase persists a new case and returns it with server-assigned fields
// (CaseID, CreatedAt, UpdatedAt).
func (r *caseRepository) CreateCase(ctx context.Context, c models.Case) (models.Case, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCase, c.CompanyID, c.Reference, c.ReporterID, c.Title, c.Description, c.Status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*caseRepository.CreateCase").Msg("error: row is nil")
		return models.Case{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := scanCase(row, &c)
	if errors.Is(err, sql.ErrNoRows) {
		// INSERT ... RETURNING produced no row: nothing was persisted.
		log.Error().Str("func", "*caseRepository.CreateCase").Msg("error: insert returned no row")
		return models.Case{}, ErrCaseNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.CreateCase").Msg("error: scanning error")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// FindCaseByID returns the case with the given internal identifier.
//
// Returns [ErrCaseNotFound] when no such case exists.
func (r *caseRepository) FindCaseByID(ctx context.Context, caseID int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	var c models.Case
	row := r.db.QueryRowContext(ctx, findCaseByID, caseID)

	err := scanCase(row, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Case{}, ErrCaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.FindCaseByID").Msg("error: scanning error")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// ListCases returns the cases of one company, narrowed by filter. The query
// is built dynamically: status constraint, ordering, and row cap are only
// present when the filter asks for them.
func (r *caseRepository) ListCases(ctx context.Context, companyID int64, filter models.CaseFilter) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"case_id", "company_id", "reference", "reporter_id",
		"title", "description", "status", "created_at", "updated_at",
	).
		From(models.Case{}.TableName()).
		Where(sq.Eq{"company_id": companyID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.NewestFirst {
		builder = builder.OrderBy("created_at DESC")
	} else {
		builder = builder.OrderBy("created_at")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListCases").Msg("error building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListCases").Msg("error executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		var c models.Case
		if err := scanCase(rows, &c); err != nil {
			log.Err(err).Str("func", "*caseRepository.ListCases").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cases, nil
}

// UpdateCaseStatus moves the case to status and returns the updated record.
// The lifecycle rules are enforced at the service layer; the repository only
// persists the change.
//
// Returns [ErrCaseNotFound] when no such case exists.
func (r *caseRepository) UpdateCaseStatus(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error) {
	log := logger.FromContext(ctx)

	var c models.Case
	row := r.db.QueryRowContext(ctx, updateCaseStatus, caseID, status)

	err := scanCase(row, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Case{}, ErrCaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.UpdateCaseStatus").Msg("error: scanning error")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// AddMessage appends a message to a case's thread and returns it with
// server-assigned fields (MessageID, CreatedAt).
func (r *caseRepository) AddMessage(ctx context.Context, message models.CaseMessage) (models.CaseMessage, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, addCaseMessage, message.CaseID, message.Author, message.Body)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*caseRepository.AddMessage").Msg("error: row is nil")
		return models.CaseMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&message.MessageID, &message.CaseID, &message.Author, &message.Body, &message.CreatedAt); err != nil {
		log.Err(err).Str("func", "*caseRepository.AddMessage").Msg("error: scanning error")
		return models.CaseMessage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return message, nil
}

// ListMessages returns a case's thread in chronological order.
func (r *caseRepository) ListMessages(ctx context.Context, caseID int64) ([]models.CaseMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCaseMessages, caseID)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListMessages").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var messages []models.CaseMessage
	for rows.Next() {
		var m models.CaseMessage
		if err := rows.Scan(&m.MessageID, &m.CaseID, &m.Author, &m.Body, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*caseRepository.ListMessages").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner, c *models.Case) error {
	return row.Scan(
		&c.CaseID, &c.CompanyID, &c.Reference, &c.ReporterID,
		&c.Title, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
}
