// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wisling/case-portal/internal/logger"
)

// createKVSlotsTable provisions the single table backing the session slot.
// The slot is a plain key/value row; the session payload is stored as the
// JSON string the session store produces.
const createKVSlotsTable = `CREATE TABLE IF NOT EXISTS kv_slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

const (
	getKVSlot    = `SELECT value FROM kv_slots WHERE key = ?;`
	setKVSlot    = `INSERT INTO kv_slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
	removeKVSlot = `DELETE FROM kv_slots WHERE key = ?;`
)

// sqliteKeyValueStore is a [KeyValueStore] backed by a local SQLite file.
// It is the default production backend of the password-session slot: the
// slot must survive process restarts, which an in-memory map cannot do.
type sqliteKeyValueStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore opens (creating if necessary) the SQLite database at
// path and provisions the kv_slots table. The returned store is safe for
// concurrent use; database/sql serialises access to the single connection.
func NewSQLiteKeyValueStore(ctx context.Context, path string, log *logger.Logger) (KeyValueStore, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValueStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValueStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValueStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, createKVSlotsTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValueStore").Msg("error provisioning kv_slots table")
		return nil, fmt.Errorf("error provisioning kv_slots table: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteKeyValueStore").Str("path", path).Msg("session slot database ready")

	return &sqliteKeyValueStore{db: conn, logger: log}, nil
}

// Get implements [KeyValueStore].
func (s *sqliteKeyValueStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(getKVSlot, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// Set implements [KeyValueStore].
func (s *sqliteKeyValueStore) Set(key, value string) error {
	if _, err := s.db.Exec(setKVSlot, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove implements [KeyValueStore].
func (s *sqliteKeyValueStore) Remove(key string) error {
	if _, err := s.db.Exec(removeKVSlot, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
