// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawRequest is a user-composed API call sent by the `raw` command.
type RawRequest struct {
	Method     string
	Path       string
	APIVersion string
	Params     map[string]string
}
