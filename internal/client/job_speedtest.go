// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eero/internal/workers"
	"github.com/MKhiriev/go-eero/models"
)

// speedTestJob starts a speed test on one network and, when wait is set,
// polls until its result shows up.
type speedTestJob struct {
	runtime *Runtime
	network models.NetworkRef

	wait     bool
	interval time.Duration
	timeout  time.Duration
}

// Run implements [workers.Worker]. Errors name the network they belong to.
func (j *speedTestJob) Run(ctx context.Context) error {
	if err := j.run(ctx); err != nil {
		return fmt.Errorf("network %s: %w", j.network.ID(), err)
	}
	return nil
}

func (j *speedTestJob) run(ctx context.Context) error {
	rt := j.runtime
	if err := rt.Output.Println(fmt.Sprintf("Running speed test on network %s...", j.network.ID())); err != nil {
		return err
	}

	since := time.Now()
	started, err := rt.Services.NetworkService.RunSpeedTest(ctx, j.network.URL)
	if err != nil {
		return err
	}
	if !j.wait {
		return rt.Output.Write(started)
	}

	result, err := rt.Services.NetworkService.WaitSpeedTest(ctx, j.network.URL, since, j.interval, j.timeout)
	if err != nil {
		return err
	}
	return rt.Output.Write(models.SpeedTests{result})
}

var _ workers.Worker = (*speedTestJob)(nil)
