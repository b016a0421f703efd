// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// their goroutines internally and return. Shutdown stops the worker and
// blocks until its goroutines have finished.
type Worker interface {
	Run()
	Shutdown()
}
