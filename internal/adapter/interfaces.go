// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the eero cloud API.
//
// The primary abstraction is [EeroAdapter], which decouples the service layer
// from HTTP. Every call goes to baseURL/<version>/<path>, carries the session
// token as the "s" cookie and is answered with a {meta, data} envelope.
// Envelope failures surface as [*APIError] so callers can use [errors.As] to
// inspect the vendor code and message.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-eero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/eero_adapter_mock.go -package=mock

// EeroAdapter defines communication with the eero cloud API.
type EeroAdapter interface {
	// SetToken stores the session token attached to subsequent requests.
	// An empty token detaches the session.
	SetToken(token string)

	// Token returns the session token currently held, or "".
	Token() string

	// Request performs one call and unwraps the envelope. GET and DELETE
	// params become query parameters, POST and PUT params the JSON body.
	// On success the envelope's data is returned verbatim (`""` when the
	// envelope has no data).
	Request(ctx context.Context, method, path string, version APIVersion, params any) (json.RawMessage, error)

	// Login starts the handshake for an email address or phone number and
	// returns the challenge token.
	Login(ctx context.Context, identity string) (string, error)

	// VerifyLogin confirms the challenge with the code the user received.
	// On success the challenge itself becomes the session token.
	VerifyLogin(ctx context.Context, code, challenge string) error

	// RefreshLogin exchanges the current token for a new one.
	RefreshLogin(ctx context.Context) (string, error)

	// Logout invalidates the current token remotely.
	Logout(ctx context.Context) error

	// The read calls below return the payload exactly as the API sent it.
	// Callers that need typed records decode it with [DecodeData].

	Account(ctx context.Context) (json.RawMessage, error)
	Network(ctx context.Context, networkID string) (json.RawMessage, error)
	Devices(ctx context.Context, networkID string) (json.RawMessage, error)
	Device(ctx context.Context, networkID, deviceID string) (json.RawMessage, error)
	Eeros(ctx context.Context, networkID string) (json.RawMessage, error)
	RebootEero(ctx context.Context, eeroID string) (json.RawMessage, error)
	RebootNetwork(ctx context.Context, networkID string) (json.RawMessage, error)
	SpeedTests(ctx context.Context, networkID string) ([]models.SpeedTest, error)
	RunSpeedTest(ctx context.Context, networkID string) (json.RawMessage, error)
	Diagnostics(ctx context.Context, networkID string) (json.RawMessage, error)
	Profiles(ctx context.Context, networkID string) (json.RawMessage, error)
	Forwards(ctx context.Context, networkID string) (json.RawMessage, error)
	Reservations(ctx context.Context, networkID string) (json.RawMessage, error)
	Resources(ctx context.Context, networkID string) (json.RawMessage, error)
}
