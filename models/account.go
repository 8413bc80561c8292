// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Account is the payload of GET /account.
type Account struct {
	Name     string          `json:"name"`
	Phone    ContactPoint    `json:"phone"`
	Email    ContactPoint    `json:"email"`
	LogID    string          `json:"log_id,omitempty"`
	Role     string          `json:"role,omitempty"`
	Networks AccountNetworks `json:"networks"`
}

// ContactPoint is a verified (or not yet verified) phone number or email.
type ContactPoint struct {
	Value    string `json:"value"`
	Verified bool   `json:"verified"`
}

// AccountNetworks lists the networks the account has access to.
type AccountNetworks struct {
	Count int          `json:"count"`
	Data  []NetworkRef `json:"data"`
}

// NetworkRef is the short network record embedded in an [Account].
type NetworkRef struct {
	URL     string    `json:"url"`
	Name    string    `json:"name,omitempty"`
	Created time.Time `json:"created,omitzero"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the record and keeps a copy of it as sent.
func (n *NetworkRef) UnmarshalJSON(data []byte) error {
	type plain NetworkRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*n = NetworkRef(p)
	n.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the record exactly as the API sent it, or nil when it was not
// decoded from a response.
func (n NetworkRef) Raw() json.RawMessage {
	return n.raw
}

// ID returns the numeric network identifier taken from URL.
func (n NetworkRef) ID() string {
	return IDFromURL(n.URL)
}
