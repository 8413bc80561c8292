// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run parses args (including the program name) and executes the
	// selected command.
	Run(ctx context.Context, args []string) error
}

// Prompter asks the user for a single value.
type Prompter interface {
	Prompt(label, placeholder string, secret bool) (string, error)
}
