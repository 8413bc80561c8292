// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/models"
	"github.com/urfave/cli/v2"
)

// raw sends METHOD PATH with the held session, if any.
func (a *App) raw(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("%w: raw needs METHOD and PATH", ErrMissingArguments)
	}
	rt, err := a.runtime()
	if err != nil {
		return err
	}

	request := models.RawRequest{
		Method:     strings.ToUpper(c.Args().Get(0)),
		Path:       c.Args().Get(1),
		APIVersion: c.String(flagAPIVersion),
	}
	if pairs := c.StringSlice(flagParam); len(pairs) > 0 {
		if request.Params, err = parseParams(pairs); err != nil {
			return err
		}
	}
	if err = a.validator.Validate(c.Context, request); err != nil {
		return err
	}

	version, err := adapter.ParseAPIVersion(request.APIVersion)
	if err != nil {
		return err
	}

	// a nil map must not reach the adapter as a non-nil params value
	var params any
	if request.Params != nil {
		params = request.Params
	}

	data, err := rt.Adapter.Request(c.Context, request.Method, request.Path, version, params)
	if err != nil {
		return err
	}
	return rt.Output.Write(data)
}

// parseParams turns KEY=VALUE pairs into a map.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, pair)
		}
		params[strings.TrimSpace(key)] = value
	}
	return params, nil
}
