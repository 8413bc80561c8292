// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-eero/models"
)

// AuthService drives the two-step eero login and owns the session token.
//
// The handshake moves through [Unauthenticated], [ChallengeIssued] and
// [Authenticated]. Nothing here retries or refreshes on its own.
type AuthService interface {
	// RestoreSession loads a previously saved token and attaches it to the
	// adapter. A missing token leaves the service unauthenticated.
	RestoreSession(ctx context.Context) error

	// BeginLogin asks the API to send a verification code to identity
	// (an email address or phone number) and returns the challenge token.
	BeginLogin(ctx context.Context, identity string) (string, error)

	// VerifyLogin confirms challenge with code. An empty challenge falls back
	// to the one remembered by BeginLogin. A rejected code keeps the
	// challenge so the call can be retried.
	VerifyLogin(ctx context.Context, code, challenge string) error

	// NeedsLogin reports whether this process holds no session token. It
	// reads the in-memory token, so after [ErrSavingSession] it is false
	// while the store is still empty.
	NeedsLogin() bool

	// State returns the current handshake state.
	State() AuthState

	// RefreshSession exchanges the held token for a new one and persists it.
	RefreshSession(ctx context.Context) error

	// Logout ends the remote session when possible and forgets the token.
	Logout(ctx context.Context) error
}

// NetworkService exposes read and action calls on the account's networks.
// Every id argument also accepts the resource URL returned by the API.
type NetworkService interface {
	// Account returns the account record as the API sent it.
	Account(ctx context.Context) (json.RawMessage, error)
	// Networks lists the networks of the account.
	Networks(ctx context.Context) (models.NetworkRefs, error)
	NetworkDetails(ctx context.Context, networkID string) (json.RawMessage, error)

	Devices(ctx context.Context, networkID string) (json.RawMessage, error)
	Device(ctx context.Context, networkID, deviceID string) (json.RawMessage, error)
	Eeros(ctx context.Context, networkID string) (json.RawMessage, error)

	RebootEero(ctx context.Context, eeroID string) (json.RawMessage, error)
	RebootNetwork(ctx context.Context, networkID string) (json.RawMessage, error)

	// SpeedTests returns the speed test history, most recent first.
	SpeedTests(ctx context.Context, networkID string) (models.SpeedTests, error)
	// LatestSpeedTest returns the most recent result or [ErrNoSpeedTests].
	LatestSpeedTest(ctx context.Context, networkID string) (models.SpeedTest, error)
	RunSpeedTest(ctx context.Context, networkID string) (json.RawMessage, error)
	// WaitSpeedTest polls the history until a result dated after since shows
	// up. Zero interval or timeout use the configured defaults.
	WaitSpeedTest(ctx context.Context, networkID string, since time.Time, interval, timeout time.Duration) (models.SpeedTest, error)

	Diagnostics(ctx context.Context, networkID string) (json.RawMessage, error)
	Profiles(ctx context.Context, networkID string) (json.RawMessage, error)
	Forwards(ctx context.Context, networkID string) (json.RawMessage, error)
	Reservations(ctx context.Context, networkID string) (json.RawMessage, error)
	Resources(ctx context.Context, networkID string) (json.RawMessage, error)

	// DeviceSummary narrows every device of every network into one report.
	DeviceSummary(ctx context.Context) (models.DeviceSummaries, error)
	// EeroSummary narrows every eero of every network into one report.
	EeroSummary(ctx context.Context) (models.EeroSummaries, error)
}
