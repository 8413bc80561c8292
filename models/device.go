// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Device is a client device seen on a network
// (GET /networks/{id}/devices and /networks/{id}/devices/{id}).
type Device struct {
	URL          string       `json:"url"`
	MAC          string       `json:"mac"`
	IP           string       `json:"ip"`
	IPs          []string     `json:"ips,omitempty"`
	Nickname     string       `json:"nickname"`
	Hostname     string       `json:"hostname"`
	Manufacturer string       `json:"manufacturer"`
	DeviceType   string       `json:"device_type,omitempty"`
	Connected    bool         `json:"connected"`
	Wireless     bool         `json:"wireless"`
	Paused       bool         `json:"paused"`
	Blacklisted  bool         `json:"blacklisted"`
	Connectivity Connectivity `json:"connectivity"`
	Usage        *Usage       `json:"usage"`
	Source       DeviceSource `json:"source"`
	Interface    Interface    `json:"interface"`
	LastActive   time.Time    `json:"last_active,omitzero"`
	FirstActive  time.Time    `json:"first_active,omitzero"`
}

// ID returns the device identifier taken from URL.
func (d Device) ID() string {
	return IDFromURL(d.URL)
}

// Connectivity is the radio quality of a device's link.
type Connectivity struct {
	RxBitrate *string `json:"rx_bitrate"`
	Signal    string  `json:"signal,omitempty"`
	Score     float64 `json:"score"`
	ScoreBars int     `json:"score_bars"`
}

// Usage is the current throughput of a device.
type Usage struct {
	DownMbps float64 `json:"down_mbps"`
	UpMbps   float64 `json:"up_mbps"`
}

// DeviceSource names the eero a device is attached to.
type DeviceSource struct {
	Location string `json:"location"`
	URL      string `json:"url,omitempty"`
}

// Interface is the radio band and channel of a wireless device.
type Interface struct {
	Frequency     string `json:"frequency,omitempty"`
	FrequencyUnit string `json:"frequency_unit,omitempty"`
}
