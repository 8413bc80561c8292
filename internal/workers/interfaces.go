// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for running bounded units of work
// in the calling goroutine.
// It defines the Worker interface, a Workers aggregate that runs several
// workers in order, and a Poller that repeats a check until it succeeds.
package workers

import "context"

// Worker is the interface that must be implemented by any worker.
// Run blocks until the work is finished, fails, or ctx ends.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the work
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
