// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/output"
	"github.com/MKhiriev/go-eero/internal/service"
	"github.com/MKhiriev/go-eero/internal/store"
	"github.com/MKhiriev/go-eero/internal/tui"
)

// LoggerRole is the role field of every log line written by the client.
const LoggerRole = "eero-client"

// Streams are the standard streams of one invocation.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Runtime holds everything a command needs.
type Runtime struct {
	Config   *config.ClientConfig
	Logger   *logger.Logger
	Store    store.SessionStore
	Adapter  adapter.EeroAdapter
	Services *service.ClientServices
	Output   *output.Writer
	Prompter Prompter
}

// Close releases the session store and the log file.
func (r *Runtime) Close() error {
	var errs []error
	if r.Store != nil {
		errs = append(errs, r.Store.Close())
	}
	if r.Logger != nil {
		errs = append(errs, r.Logger.Close())
	}
	return errors.Join(errs...)
}

// Bootstrap builds the [Runtime] from a validated config.
type Bootstrap func(ctx context.Context, cfg *config.ClientConfig, streams Streams) (*Runtime, error)

// DefaultBootstrap wires the production runtime: an HTTP adapter, the
// configured session store and a terminal prompter drawn on stderr.
func DefaultBootstrap(ctx context.Context, cfg *config.ClientConfig, streams Streams) (*Runtime, error) {
	log := logger.NewClientLogger(LoggerRole, cfg.Log.File, cfg.Log.Level)

	sessionStore, err := store.NewSessionStore(ctx, cfg.Session, log)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("create session store: %w", err)
	}

	eeroAdapter, err := adapter.NewHTTPEeroAdapter(cfg.Adapter, log)
	if err != nil {
		_ = sessionStore.Close()
		_ = log.Close()
		return nil, fmt.Errorf("create eero adapter: %w", err)
	}

	return &Runtime{
		Config:   cfg,
		Logger:   log,
		Store:    sessionStore,
		Adapter:  eeroAdapter,
		Services: service.NewClientServices(sessionStore, eeroAdapter, *cfg, log),
		Output:   output.NewWriter(streams.Out, cfg.Output),
		Prompter: tui.New(streams.In, streams.Err),
	}, nil
}
