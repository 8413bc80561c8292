// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/models"
	"github.com/urfave/cli/v2"
)

const (
	promptIdentity = "Your eero login (email address or phone number)"
	promptCode     = "Your eero verification code"
)

func (a *App) login(c *cli.Context) error {
	rt, err := a.runtime()
	if err != nil {
		return err
	}
	auth := rt.Services.AuthService

	if !auth.NeedsLogin() {
		return rt.Output.Println("Already logged in. Not required.")
	}

	identity := c.String(flagIdentity)
	if identity == "" {
		identity, err = rt.Prompter.Prompt(promptIdentity, "you@example.com", false)
		if err != nil {
			return err
		}
	}

	if err = a.validator.Validate(c.Context, models.LoginRequest{Login: identity}); err != nil {
		return err
	}

	challenge, err := auth.BeginLogin(c.Context, identity)
	if err != nil {
		return err
	}

	attempts := c.Int(flagAttempts)
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		code, err := rt.Prompter.Prompt(promptCode, "123456", false)
		if err != nil {
			return err
		}

		err = auth.VerifyLogin(c.Context, code, challenge)
		if err == nil {
			return rt.Output.Println("Login successful. Rerun a command to get some output.")
		}

		var apiErr *adapter.APIError
		if !errors.As(err, &apiErr) || attempt >= attempts {
			return err
		}
		fmt.Fprintf(a.streams.Err, "error: %v (attempt %d of %d)\n", err, attempt, attempts)
	}
}

func (a *App) logout(c *cli.Context) error {
	rt, err := a.runtime()
	if err != nil {
		return err
	}
	if err = rt.Services.AuthService.Logout(c.Context); err != nil {
		return err
	}
	return rt.Output.Println("Logged out.")
}

func (a *App) refresh(c *cli.Context) error {
	rt, err := a.session()
	if err != nil {
		return err
	}
	if err = rt.Services.AuthService.RefreshSession(c.Context); err != nil {
		return err
	}
	return rt.Output.Println("Session refreshed.")
}
