// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import "errors"

// Sentinel errors returned by repository and session-store methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrStorageWrite is returned when the key-value backend of the
	// password-session slot rejects a write (full disk, closed database).
	// It propagates out of Store and Refresh; reads never surface it.
	ErrStorageWrite = errors.New("session slot write failed")

	// ErrCompanySlugAlreadyExists is returned when registering a company
	// fails because another company already owns the same slug.
	ErrCompanySlugAlreadyExists = errors.New("company slug already exists")

	// ErrCompanyNotFound is returned when a lookup by slug matches no
	// registered company.
	ErrCompanyNotFound = errors.New("company was not found")

	// ErrCaseNotFound is returned when a query or update targets a case
	// that does not exist in the database.
	ErrCaseNotFound = errors.New("case was not found")

	// ErrCaseNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating that no case was
	// actually persisted.
	ErrCaseNotSaved = errors.New("case was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
