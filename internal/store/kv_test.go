// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryKeyValueStore_SetGetRemove(t *testing.T) {
	kv := NewMemoryKeyValueStore()

	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set (overwrite) error: %v", err)
	}

	value, ok, err := kv.Get("k")
	if err != nil || !ok || value != "v2" {
		t.Fatalf("Get = (%q, %v, %v), want (v2, true, nil)", value, ok, err)
	}

	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatalf("expected key to be gone after Remove")
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("Remove of a missing key must be a no-op, got %v", err)
	}
}

func TestFileKeyValueStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")

	kv, err := NewFileKeyValueStore(path)
	if err != nil {
		t.Fatalf("NewFileKeyValueStore error: %v", err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	reopened, err := NewFileKeyValueStore(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}

	value, ok, err := reopened.Get("k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("Get after reopen = (%q, %v, %v), want (v, true, nil)", value, ok, err)
	}

	if err := reopened.Remove("k"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	again, err := NewFileKeyValueStore(path)
	if err != nil {
		t.Fatalf("second reopen error: %v", err)
	}
	if _, ok, _ := again.Get("k"); ok {
		t.Fatalf("expected removal to persist across reopen")
	}
}

func TestFileKeyValueStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	kv, err := NewFileKeyValueStore(path)
	if err != nil {
		t.Fatalf("NewFileKeyValueStore error: %v", err)
	}

	if _, ok, _ := kv.Get("anything"); ok {
		t.Fatalf("corrupt file should load as an empty store")
	}

	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set after corrupt load: %v", err)
	}
}
