// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Eero is a single eero node (GET /networks/{id}/eeros).
type Eero struct {
	URL                   string      `json:"url"`
	Serial                string      `json:"serial"`
	Location              string      `json:"location"`
	Model                 string      `json:"model,omitempty"`
	OSVersion             string      `json:"os_version,omitempty"`
	MACAddress            string      `json:"mac_address,omitempty"`
	IPAddress             string      `json:"ip_address"`
	Status                string      `json:"status"`
	Gateway               bool        `json:"gateway"`
	Wired                 bool        `json:"wired"`
	UsingWAN              bool        `json:"using_wan"`
	ConnectedClientsCount int         `json:"connected_clients_count"`
	MeshQualityBars       int         `json:"mesh_quality_bars"`
	Nightlight            *Nightlight `json:"nightlight"`
	LastHeartbeat         time.Time   `json:"last_heartbeat,omitzero"`
}

// ID returns the eero identifier taken from URL.
func (e Eero) ID() string {
	return IDFromURL(e.URL)
}

// Nightlight is the nightlight state of eero Beacon nodes. It is null for
// models without one.
type Nightlight struct {
	Enabled    bool   `json:"enabled"`
	Brightness int    `json:"brightness,omitempty"`
	Schedule   string `json:"schedule,omitempty"`
}
