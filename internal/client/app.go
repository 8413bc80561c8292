// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/validators"
	"github.com/MKhiriev/go-eero/models"
	"github.com/urfave/cli/v2"
)

// App is the eero command line application.
type App struct {
	cli       *cli.App
	bootstrap Bootstrap
	streams   Streams
	prompter  Prompter
	validator validators.Validator

	rt *Runtime
}

// Option customises an [App].
type Option func(*App)

// WithBootstrap replaces [DefaultBootstrap].
func WithBootstrap(b Bootstrap) Option {
	return func(a *App) { a.bootstrap = b }
}

// WithStreams replaces the process stdin, stdout and stderr.
func WithStreams(s Streams) Option {
	return func(a *App) { a.streams = s }
}

// WithPrompter replaces the prompter built by the bootstrap.
func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		bootstrap: DefaultBootstrap,
		streams:   Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
		validator: validators.NewRequestValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.cli = &cli.App{
		Name:                 "eero",
		Usage:                "Query and manage eero mesh networks from the terminal",
		Version:              buildInfo.String(),
		Flags:                config.Flags(),
		Commands:             a.commands(),
		Before:               a.before,
		After:                a.after,
		Reader:               a.streams.In,
		Writer:               a.streams.Out,
		ErrWriter:            a.streams.Err,
		EnableBashCompletion: true,
		// errors are reported by Main
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cli.RunContext(ctx, args)
}

// Main runs the app and reports a failure as "error: ..." on stderr.
// It returns the process exit code.
func (a *App) Main(ctx context.Context, args []string) int {
	if err := a.Run(ctx, args); err != nil {
		fmt.Fprintf(a.streams.Err, "error: %v\n", err)
		return 1
	}
	return 0
}

func (a *App) before(c *cli.Context) error {
	cfg, err := config.GetClientConfig(config.FromCLI(c))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rt, err := a.bootstrap(c.Context, cfg, a.streams)
	if err != nil {
		return err
	}
	if a.prompter != nil {
		rt.Prompter = a.prompter
	}
	a.rt = rt

	if err = rt.Services.AuthService.RestoreSession(c.Context); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	rt.Logger.Debug().
		Str("func", "App.before").
		Str("session_driver", cfg.Session.Driver).
		Str("output", cfg.Output.Format).
		Bool("logged_in", !rt.Services.AuthService.NeedsLogin()).
		Msg("runtime ready")
	return nil
}

func (a *App) after(*cli.Context) error {
	if a.rt == nil {
		return nil
	}
	err := a.rt.Close()
	a.rt = nil
	return err
}

// runtime returns the runtime of the current invocation.
func (a *App) runtime() (*Runtime, error) {
	if a.rt == nil {
		return nil, ErrNoRuntime
	}
	return a.rt, nil
}

// session returns the runtime after checking that a session is held.
func (a *App) session() (*Runtime, error) {
	rt, err := a.runtime()
	if err != nil {
		return nil, err
	}
	if rt.Services.AuthService.NeedsLogin() {
		return nil, ErrNotLoggedIn
	}
	return rt, nil
}

// forEachNetwork runs fn for every network of the account, in account order.
func (a *App) forEachNetwork(c *cli.Context, fn func(rt *Runtime, network models.NetworkRef) error) error {
	rt, err := a.session()
	if err != nil {
		return err
	}

	networks, err := rt.Services.NetworkService.Networks(c.Context)
	if err != nil {
		return err
	}
	for _, network := range networks {
		if err = fn(rt, network); err != nil {
			return err
		}
	}
	return nil
}

var _ Client = (*App)(nil)
