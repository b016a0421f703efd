// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package workers

import (
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Shutdown were called.
type mockWorker struct {
	runCount      int
	shutdownCount int
	shutdownOrder *[]int
	id            int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Shutdown() {
	m.shutdownCount++
	if m.shutdownOrder != nil {
		*m.shutdownOrder = append(*m.shutdownOrder, m.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Shutdown_ReverseOrder(t *testing.T) {
	var order []int
	w1 := &mockWorker{id: 1, shutdownOrder: &order}
	w2 := &mockWorker{id: 2, shutdownOrder: &order}
	w3 := &mockWorker{id: 3, shutdownOrder: &order}

	ws := NewWorkers(w1, w2, w3)
	ws.Shutdown()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("expected shutdown order [3 2 1], got %v", order)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Shutdown()
}
