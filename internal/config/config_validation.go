// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	cfg.Storage.Session.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Session.Driver))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	switch cfg.Storage.Session.Driver {
	case "", DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown session driver %q", ErrInvalidStorageConfigs, cfg.Storage.Session.Driver)
	}

	switch cfg.Output.Format {
	case "", FormatAuto, FormatJSON, FormatYAML, FormatTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if cfg.Adapter.BaseURL != "" {
		u, err := url.Parse(cfg.Adapter.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Session.Driver {
	case DriverFile:
		if cfg.Session.Path == "" {
			return fmt.Errorf("%w: empty session path", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if cfg.Session.DSN == "" {
			return fmt.Errorf("%w: empty session dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session driver %q", ErrInvalidStorageConfigs, cfg.Session.Driver)
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Output.Format == "" {
		return ErrInvalidOutputConfigs
	}

	if cfg.SpeedTest.Interval <= 0 || cfg.SpeedTest.Timeout < cfg.SpeedTest.Interval {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
