// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-eero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRawRequest() models.RawRequest {
	return models.RawRequest{
		Method:     "GET",
		Path:       "networks/1/guestnetwork",
		APIVersion: "2.2",
		Params:     map[string]string{"fields": "enabled"},
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	raw := validRawRequest()
	assert.NoError(t, v.Validate(ctx, raw))
	assert.NoError(t, v.Validate(ctx, &raw))

	login := models.LoginRequest{Login: "me@example.com"}
	assert.NoError(t, v.Validate(ctx, login))
	assert.NoError(t, v.Validate(ctx, &login))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// RawRequest
// ---------------------------------------------------------------------------

func TestValidate_RawRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.RawRequest)
		want   error
	}{
		{"lowercase method", func(r *models.RawRequest) { r.Method = "post" }, nil},
		{"unknown method", func(r *models.RawRequest) { r.Method = "FETCH" }, ErrInvalidMethod},
		{"empty path", func(r *models.RawRequest) { r.Path = " / " }, ErrEmptyPath},
		{"absolute url", func(r *models.RawRequest) { r.Path = "https://example.com/2.2/account" }, ErrAbsolutePath},
		{"version in path", func(r *models.RawRequest) { r.Path = "/2.2/account" }, ErrVersionInPath},
		{"leading slash", func(r *models.RawRequest) { r.Path = "/account" }, nil},
		{"bad version", func(r *models.RawRequest) { r.APIVersion = "3.0" }, ErrInvalidAPIVersion},
		{"v-prefixed version", func(r *models.RawRequest) { r.APIVersion = "v2.3" }, nil},
		{"empty param key", func(r *models.RawRequest) { r.Params = map[string]string{" ": "x"} }, ErrEmptyParamKey},
		{"no params", func(r *models.RawRequest) { r.Params = nil }, nil},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRawRequest()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_RawRequest_Fields(t *testing.T) {
	v := NewRequestValidator()
	r := models.RawRequest{Method: "GET"}

	assert.NoError(t, v.Validate(context.Background(), r, FieldMethod))
	assert.ErrorIs(t, v.Validate(context.Background(), r, FieldPath), ErrEmptyPath)
	assert.ErrorIs(t, v.Validate(context.Background(), r, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// LoginRequest
// ---------------------------------------------------------------------------

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	for _, ok := range []string{"me@example.com", " me@example.com ", "+1 (555) 010-9999", "5550109999"} {
		assert.NoError(t, v.Validate(ctx, models.LoginRequest{Login: ok}), ok)
	}

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Login: "  "}), ErrEmptyLogin)
	for _, bad := range []string{"not an address", "me@localhost", "@example.com", "12-34", "555x0109999"} {
		assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Login: bad}), ErrInvalidLogin, bad)
	}

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Login: "me@example.com"}, FieldPath), ErrUnknownField)
}
