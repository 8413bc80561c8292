// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Session store drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Output formats. FormatAuto prints reports as tables and everything else
// as JSON.
const (
	FormatAuto  = "auto"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

const (
	DefaultBaseURL           = "https://api-user.e2ro.com"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultUserAgent         = "go-eero"
	DefaultSessionPath       = "session.cookie"
	DefaultSessionDSN        = "eero-session.db"
	DefaultLogLevel          = "warn"
	DefaultSpeedTestInterval = 5 * time.Second
	DefaultSpeedTestTimeout  = 2 * time.Minute
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{Level: DefaultLogLevel},
		Storage: Storage{
			Session: Session{
				Driver: DriverFile,
				Path:   DefaultSessionPath,
				DSN:    DefaultSessionDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Output: Output{Format: FormatAuto},
		Workers: Workers{
			SpeedTestInterval: DefaultSpeedTestInterval,
			SpeedTestTimeout:  DefaultSpeedTestTimeout,
		},
	}
}
