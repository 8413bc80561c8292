// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing base URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an unknown driver or an empty path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidWorkerConfigs indicates invalid poller settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
