// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "EERO_"

// StructuredConfig is the top-level configuration container for the eero
// command. It aggregates all sub-configurations and is populated by merging
// values from flags, environment variables, an optional config file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log controls where diagnostic output goes and how verbose it is.
	Log Log `envPrefix:"LOG_"`

	// Storage holds configuration for the session persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the eero cloud API transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Output controls how command results are rendered.
	Output Output `envPrefix:"OUTPUT_"`

	// Workers holds the speed test poller settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the EERO_CONFIG environment variable or the -c / --config
	// flag.
	FilePath string `env:"CONFIG"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the log file. Empty means stderr.
	// Env: EERO_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: EERO_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage groups the configuration for the storage backends used by the
// command.
type Storage struct {
	// Session selects and locates the session token store.
	Session Session `envPrefix:"SESSION_"`
}

// Session holds settings for the session token store.
type Session struct {
	// Driver is either [DriverFile] or [DriverSQLite].
	// Env: EERO_STORAGE_SESSION_DRIVER
	Driver string `env:"DRIVER"`

	// Path is the session file used by the file driver.
	// Env: EERO_STORAGE_SESSION_PATH
	Path string `env:"PATH"`

	// DSN is the SQLite data source used by the sqlite driver.
	// Env: EERO_STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings for the outbound API client.
type Adapter struct {
	// BaseURL is the API root without the version segment
	// (e.g. "https://api-user.e2ro.com").
	// Env: EERO_ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: EERO_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: EERO_ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Output holds rendering settings.
type Output struct {
	// Format is one of "auto", "json", "yaml" or "table".
	// Env: EERO_OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Copy additionally places rendered output on the clipboard.
	// Env: EERO_OUTPUT_COPY
	Copy bool `env:"COPY"`
}

// Workers holds settings for the speed test poller.
type Workers struct {
	// SpeedTestInterval is the delay between two result checks.
	// Env: EERO_WORKERS_SPEEDTEST_INTERVAL
	SpeedTestInterval time.Duration `env:"SPEEDTEST_INTERVAL"`

	// SpeedTestTimeout bounds the whole wait.
	// Env: EERO_WORKERS_SPEEDTEST_TIMEOUT
	SpeedTestTimeout time.Duration `env:"SPEEDTEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first non-zero field wins):
//  1. overrides, usually built from command-line flags by [FromCLI]
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
//
// overrides may be nil.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withFile().
		withDefaults().
		build()
}
