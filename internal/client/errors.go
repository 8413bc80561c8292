// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNotLoggedIn      = errors.New("not logged in: run `eero login` first")
	ErrMissingArguments = errors.New("missing arguments")
	ErrInvalidParam     = errors.New("invalid param: expected key=value")
	ErrNoRuntime        = errors.New("client runtime is not initialised")
)
