// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"

	"github.com/wisling/case-portal/internal/config"
	"github.com/wisling/case-portal/internal/logger"
)

// Storages aggregates every persistence component the application uses: the
// PostgreSQL repositories for companies and cases, and the local single-slot
// password-session store.
type Storages struct {
	CompanyRepository    CompanyRepository
	CaseRepository       CaseRepository
	PasswordSessionStore PasswordSessionStore
}

// NewStorages connects to PostgreSQL, applies pending migrations, opens the
// local session-slot backend (SQLite when a path is configured, in-memory
// otherwise), and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	var kv KeyValueStore
	if cfg.Sessions.Path != "" {
		kv, err = NewSQLiteKeyValueStore(ctx, cfg.Sessions.Path, log)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn().Msg("no session slot path configured, sessions will not survive restarts")
		kv = NewMemoryKeyValueStore()
	}

	return &Storages{
		CompanyRepository:    NewCompanyRepository(db, log),
		CaseRepository:       NewCaseRepository(db, log),
		PasswordSessionStore: NewPasswordSessionStore(kv, log),
	}, nil
}
