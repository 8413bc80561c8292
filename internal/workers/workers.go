// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
)

// Workers runs a fixed list of workers one after another.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run runs every worker in order, even after a failure, and returns the
// joined errors. It stops early only when ctx is done.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
