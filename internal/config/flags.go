// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/urfave/cli/v2"
)

// Global flag names.
const (
	FlagConfig        = "config"
	FlagSession       = "session"
	FlagSessionDriver = "session-driver"
	FlagBaseURL       = "base-url"
	FlagTimeout       = "timeout"
	FlagLogFile       = "log-file"
	FlagLogLevel      = "log-level"
	FlagOutput        = "output"
	FlagCopy          = "copy"
)

// Flags returns the global flags understood by [FromCLI].
//
// None of them carries a default: unset flags stay zero so lower-priority
// layers (env, file, defaults) can fill them.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "JSON or YAML config file path",
		},
		&cli.StringFlag{
			Name:  FlagSession,
			Usage: "session location: cookie file, or SQLite DSN with --session-driver sqlite",
		},
		&cli.StringFlag{
			Name:  FlagSessionDriver,
			Usage: "session store driver: file, sqlite",
		},
		&cli.StringFlag{
			Name:  FlagBaseURL,
			Usage: "API root URL (e.g., https://api-user.e2ro.com)",
		},
		&cli.DurationFlag{
			Name:  FlagTimeout,
			Usage: "request timeout (e.g., 30s, 1m)",
		},
		&cli.StringFlag{
			Name:  FlagLogFile,
			Usage: "write logs to this file instead of stderr",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:    FlagOutput,
			Aliases: []string{"o"},
			Usage:   "output format: auto, json, yaml, table (auto prints reports as tables)",
		},
		&cli.BoolFlag{
			Name:  FlagCopy,
			Usage: "also copy the output to the clipboard",
		},
	}
}

// FromCLI collects the global flags from c (searching parent contexts) into
// an override layer for [GetStructuredConfig].
//
// --session names the store location for whichever driver ends up active,
// so it fills both the file path and the DSN.
func FromCLI(c *cli.Context) *StructuredConfig {
	session := c.String(FlagSession)

	return &StructuredConfig{
		Log: Log{
			File:  c.String(FlagLogFile),
			Level: c.String(FlagLogLevel),
		},
		Storage: Storage{
			Session: Session{
				Driver: c.String(FlagSessionDriver),
				Path:   session,
				DSN:    session,
			},
		},
		Adapter: Adapter{
			BaseURL:        c.String(FlagBaseURL),
			RequestTimeout: c.Duration(FlagTimeout),
		},
		Output: Output{
			Format: c.String(FlagOutput),
			Copy:   c.Bool(FlagCopy),
		},
		FilePath: c.String(FlagConfig),
	}
}
