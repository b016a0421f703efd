// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// fileKeyValueStore is a [KeyValueStore] that persists its keys as a single
// JSON document on disk. Useful for deployments without SQLite support and
// for local development; every Set rewrites the whole file.
type fileKeyValueStore struct {
	path string

	mu    sync.RWMutex
	slots map[string]string
}

// NewFileKeyValueStore loads (or initialises) the JSON slot file at path.
func NewFileKeyValueStore(path string) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:  path,
		slots: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileKeyValueStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot file: %w", err)
	}

	if err := json.Unmarshal(data, &s.slots); err != nil {
		// A corrupt slot file is recoverable: start over with an empty map.
		s.slots = make(map[string]string)
	}

	return nil
}

func (s *fileKeyValueStore) persist() error {
	data, err := json.Marshal(s.slots)
	if err != nil {
		return fmt.Errorf("marshal slots: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write slot file: %w", err)
	}

	return nil
}

// Get implements [KeyValueStore].
func (s *fileKeyValueStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	return value, ok, nil
}

// Set implements [KeyValueStore].
func (s *fileKeyValueStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	return s.persist()
}

// Remove implements [KeyValueStore].
func (s *fileKeyValueStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[key]; !ok {
		return nil
	}

	delete(s.slots, key)
	return s.persist()
}
