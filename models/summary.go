// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
	"time"
)

// LastActiveLayout is the timestamp layout used in summary tables.
const LastActiveLayout = "2006-01-02 15:04:05"

// DeviceSummary is one row of the `summary` report: the fields of a [Device]
// worth scanning at a glance.
type DeviceSummary struct {
	ID           string  `json:"id"`
	Nickname     string  `json:"nickname"`
	Hostname     string  `json:"hostname"`
	Manufacturer string  `json:"manufacturer"`
	RxBitrate    string  `json:"con_rx_bitrate"`
	Score        float64 `json:"con_score"`
	ScoreBars    int     `json:"con_score_bar"`
	Usage        *Usage  `json:"usage"`
	Location     string  `json:"location"`
	LastActive   string  `json:"last_active"`
}

// NewDeviceSummary narrows d into a [DeviceSummary].
func NewDeviceSummary(d Device) DeviceSummary {
	s := DeviceSummary{
		ID:           d.ID(),
		Nickname:     d.Nickname,
		Hostname:     d.Hostname,
		Manufacturer: d.Manufacturer,
		RxBitrate:    bitrateValue(d.Connectivity.RxBitrate),
		Score:        d.Connectivity.Score,
		ScoreBars:    d.Connectivity.ScoreBars,
		Usage:        d.Usage,
		Location:     d.Source.Location,
	}
	if !d.LastActive.IsZero() {
		s.LastActive = d.LastActive.Format(LastActiveLayout)
	}
	return s
}

// bitrateValue keeps the numeric part of "6.5 Mbps"; a missing bitrate is "0".
func bitrateValue(bitrate *string) string {
	if bitrate == nil {
		return "0"
	}
	fields := strings.Fields(*bitrate)
	if len(fields) == 0 {
		return "0"
	}
	return fields[0]
}

// DeviceSummaries is the `summary` report.
type DeviceSummaries []DeviceSummary

// TableHeaders implements the output package's tabular contract.
func (s DeviceSummaries) TableHeaders() []string {
	return []string{"ID", "NICKNAME", "HOSTNAME", "MANUFACTURER", "RX BITRATE", "SCORE", "BARS", "USAGE", "LOCATION", "LAST ACTIVE"}
}

// TableRows implements the output package's tabular contract.
func (s DeviceSummaries) TableRows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, d := range s {
		rows = append(rows, []string{
			d.ID,
			d.Nickname,
			d.Hostname,
			d.Manufacturer,
			d.RxBitrate,
			strconv.FormatFloat(d.Score, 'f', 2, 64),
			strconv.Itoa(d.ScoreBars),
			formatUsage(d.Usage),
			d.Location,
			d.LastActive,
		})
	}
	return rows
}

func formatUsage(u *Usage) string {
	if u == nil {
		return "-"
	}
	return strconv.FormatFloat(u.DownMbps, 'f', 1, 64) + "/" + strconv.FormatFloat(u.UpMbps, 'f', 1, 64)
}

// EeroSummary is one row of the `eeros` report.
type EeroSummary struct {
	Serial                string `json:"serial"`
	Location              string `json:"location"`
	ConnectedClientsCount int    `json:"connected_clients_count"`
	Status                string `json:"status"`
	Wired                 bool   `json:"wired"`
	UsingWAN              bool   `json:"using_wan"`
	Gateway               bool   `json:"gateway"`
	IPAddress             string `json:"ip_address"`
	Nightlight            bool   `json:"nightlight"`
	MeshQualityBars       int    `json:"mesh_quality_bars"`
	LastHeartbeat         string `json:"last_heartbeat"`
}

// NewEeroSummary narrows e into an [EeroSummary].
func NewEeroSummary(e Eero) EeroSummary {
	s := EeroSummary{
		Serial:                e.Serial,
		Location:              e.Location,
		ConnectedClientsCount: e.ConnectedClientsCount,
		Status:                e.Status,
		Wired:                 e.Wired,
		UsingWAN:              e.UsingWAN,
		Gateway:               e.Gateway,
		IPAddress:             e.IPAddress,
		Nightlight:            e.Nightlight != nil && e.Nightlight.Enabled,
		MeshQualityBars:       e.MeshQualityBars,
	}
	if !e.LastHeartbeat.IsZero() {
		s.LastHeartbeat = e.LastHeartbeat.UTC().Format(time.RFC3339)
	}
	return s
}

// EeroSummaries is the `eeros` report.
type EeroSummaries []EeroSummary

// TableHeaders implements the output package's tabular contract.
func (s EeroSummaries) TableHeaders() []string {
	return []string{"SERIAL", "LOCATION", "CLIENTS", "STATUS", "WIRED", "WAN", "GATEWAY", "IP", "NIGHTLIGHT", "MESH", "LAST HEARTBEAT"}
}

// TableRows implements the output package's tabular contract.
func (s EeroSummaries) TableRows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, e := range s {
		rows = append(rows, []string{
			e.Serial,
			e.Location,
			strconv.Itoa(e.ConnectedClientsCount),
			e.Status,
			strconv.FormatBool(e.Wired),
			strconv.FormatBool(e.UsingWAN),
			strconv.FormatBool(e.Gateway),
			e.IPAddress,
			strconv.FormatBool(e.Nightlight),
			strconv.Itoa(e.MeshQualityBars),
			e.LastHeartbeat,
		})
	}
	return rows
}

// NetworkRefs is the `networks` report.
type NetworkRefs []NetworkRef

// TableHeaders implements the output package's tabular contract.
func (n NetworkRefs) TableHeaders() []string {
	return []string{"ID", "NAME", "URL"}
}

// TableRows implements the output package's tabular contract.
func (n NetworkRefs) TableRows() [][]string {
	rows := make([][]string, 0, len(n))
	for _, ref := range n {
		rows = append(rows, []string{ref.ID(), ref.Name, ref.URL})
	}
	return rows
}

// SpeedTests is the `speedtests` report.
type SpeedTests []SpeedTest

// TableHeaders implements the output package's tabular contract.
func (t SpeedTests) TableHeaders() []string {
	return []string{"DATE", "DOWN", "UP"}
}

// TableRows implements the output package's tabular contract.
func (t SpeedTests) TableRows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, st := range t {
		rows = append(rows, []string{
			st.Date.UTC().Format(LastActiveLayout),
			formatRate(st.Down),
			formatRate(st.Up),
		})
	}
	return rows
}

func formatRate(r Rate) string {
	return strconv.FormatFloat(r.Value, 'f', 1, 64) + " " + r.Units
}
