// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"database/sql"

	"github.com/wisling/case-portal/internal/logger"
	"github.com/wisling/case-portal/migrations"
)

// DB wraps the relational database handle together with the error
// classifier used to decide whether failed operations are retryable.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
