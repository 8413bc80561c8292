// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
)

// NewSessionStore builds the session store selected by cfg.Driver.
//
// For the sqlite driver it performs the following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wraps the connection in a [SessionStore].
func NewSessionStore(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (SessionStore, error) {
	log.Debug().Str("driver", cfg.Driver).Msg("creating session store...")

	switch cfg.Driver {
	case config.DriverFile, "":
		return NewFileSessionStore(cfg.Path, log), nil
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteSessionStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
