// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore persists the opaque eero session token between runs.
//
// Implementations never interpret the token. A missing token is not an
// error: Load returns "" and Clear succeeds.
type SessionStore interface {
	// Load returns the stored token, or "" when none has been saved yet.
	Load(ctx context.Context) (string, error)
	// Save replaces the stored token. Surrounding whitespace is trimmed and
	// an empty result is rejected with [ErrEmptyToken].
	Save(ctx context.Context, token string) error
	// Clear removes the stored token.
	Clear(ctx context.Context) error
	// Close releases the backend.
	Close() error
}
