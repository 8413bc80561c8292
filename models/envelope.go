// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the wrapper every eero API response uses.
//
// A Meta.Code in the accepted set (200, 201, 202) means Data is the
// authoritative payload; any other code means the call failed and Meta.Error,
// when present, describes why. A nil Meta means the body was not an envelope.
type Envelope struct {
	Meta *EnvelopeMeta   `json:"meta"`
	Data json.RawMessage `json:"data,omitempty"`
}

// EnvelopeMeta is the status block of an [Envelope].
type EnvelopeMeta struct {
	Code     int    `json:"code"`
	Error    string `json:"error,omitempty"`
	ServerTS string `json:"server_time,omitempty"`
}

// IsSuccess reports whether the envelope carries a usable payload.
func (m EnvelopeMeta) IsSuccess() bool {
	switch m.Code {
	case 200, 201, 202:
		return true
	default:
		return false
	}
}

// LoginRequest is the body of the "login" action.
type LoginRequest struct {
	// Login is an email address or a phone number.
	Login string `json:"login"`
}

// LoginVerifyRequest is the body of the "login/verify" action.
type LoginVerifyRequest struct {
	Code string `json:"code"`
}

// UserToken is returned by "login" (as the challenge) and by "login/refresh"
// (as the new session token).
type UserToken struct {
	UserToken string `json:"user_token"`
}
