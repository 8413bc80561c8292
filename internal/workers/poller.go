// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"
)

// DefaultPollInterval is used when Poller.Interval is not positive.
const DefaultPollInterval = time.Second

var (
	// ErrPollTimeout is returned when Poller.Timeout elapses before Check
	// reports done.
	ErrPollTimeout = errors.New("poll timed out")
	// ErrNoCheck is returned by a Poller without a Check function.
	ErrNoCheck = errors.New("poller has no check")
)

// CheckFunc reports whether the awaited condition holds.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Poller is a [Worker] that calls Check immediately and then every Interval
// until Check reports done, Check fails, Timeout elapses or ctx ends.
type Poller struct {
	Interval time.Duration
	// Timeout bounds the whole run; zero means only ctx bounds it.
	Timeout time.Duration
	Check   CheckFunc
}

// Run implements [Worker].
func (p *Poller) Run(ctx context.Context) error {
	if p.Check == nil {
		return ErrNoCheck
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, p.Timeout, ErrPollTimeout)
		defer cancel()
	}

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		done, err := p.Check(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
		}
	}
}
