// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import "sync"

// memoryKeyValueStore is a [KeyValueStore] held entirely in process memory.
// Used in tests and in deployments that explicitly opt out of persisting the
// session slot (sessions then end with the process).
type memoryKeyValueStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryKeyValueStore constructs an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{slots: make(map[string]string)}
}

// Get implements [KeyValueStore].
func (s *memoryKeyValueStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	return value, ok, nil
}

// Set implements [KeyValueStore].
func (s *memoryKeyValueStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	return nil
}

// Remove implements [KeyValueStore].
func (s *memoryKeyValueStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
