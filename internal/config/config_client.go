// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientLog holds logger settings for the command runtime.
type ClientLog struct {
	// File is the log file path; empty means stderr.
	File string
	// Level is the zerolog level name.
	Level string
}

// ClientSession holds the session store settings.
type ClientSession struct {
	// Driver selects the backend: [DriverFile] or [DriverSQLite].
	Driver string
	// Path is the session file for the file driver.
	Path string
	// DSN is the database for the sqlite driver.
	DSN string
}

// ClientAdapter holds network settings used by the API adapter.
type ClientAdapter struct {
	// BaseURL is the API root without the version segment.
	BaseURL string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientOutput holds rendering settings.
type ClientOutput struct {
	Format string
	Copy   bool
}

// ClientSpeedTest holds the speed test poller settings.
type ClientSpeedTest struct {
	Interval time.Duration
	Timeout  time.Duration
}

// ClientConfig is the validated configuration view assembled from
// [StructuredConfig] and consumed by the command runtime.
type ClientConfig struct {
	Log       ClientLog
	Session   ClientSession
	Adapter   ClientAdapter
	Output    ClientOutput
	SpeedTest ClientSpeedTest
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields used by
// the runtime, and validates the resulting [ClientConfig].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Session: ClientSession{
			Driver: cfg.Storage.Session.Driver,
			Path:   cfg.Storage.Session.Path,
			DSN:    cfg.Storage.Session.DSN,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
		Output: ClientOutput{
			Format: cfg.Output.Format,
			Copy:   cfg.Output.Copy,
		},
		SpeedTest: ClientSpeedTest{
			Interval: cfg.Workers.SpeedTestInterval,
			Timeout:  cfg.Workers.SpeedTestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
