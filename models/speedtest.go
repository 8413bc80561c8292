// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SpeedTest is a single speed test result (GET /networks/{id}/speedtest).
// Results are returned most recent first.
type SpeedTest struct {
	Date time.Time `json:"date"`
	Up   Rate      `json:"up"`
	Down Rate      `json:"down"`
}

// Rate is a value with its unit, e.g. 312.5 Mbps.
type Rate struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}
