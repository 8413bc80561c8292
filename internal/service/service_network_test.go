// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/mock"
	"github.com/MKhiriev/go-eero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNetworkSvc(t *testing.T) (*networkService, *mock.MockEeroAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockEeroAdapter(ctrl)

	svc := NewNetworkService(mockAdapter, config.ClientSpeedTest{
		Interval: time.Millisecond,
		Timeout:  time.Second,
	}, logger.Nop()).(*networkService)
	return svc, mockAdapter
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func twoNetworksAccount() json.RawMessage {
	return json.RawMessage(`{"name":"Jane","premium_details":{"tier":"plus"},"networks":{"count":2,"data":[
		{"url":"/2.2/networks/1","name":"home"},
		{"url":"/2.2/networks/2","name":"cabin"}]}}`)
}

// ── Account / Networks ───────────────────────────────────────────────────────

func TestNetworkService_Account_Verbatim(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)

	account, err := svc.Account(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(twoNetworksAccount()), string(account))
}

func TestNetworkService_Networks(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)

	networks, err := svc.Networks(ctx)
	require.NoError(t, err)
	require.Len(t, networks, 2)
	assert.Equal(t, "1", networks[0].ID())
	assert.Equal(t, "cabin", networks[1].Name)
}

func TestNetworkService_Networks_Error(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(nil, assert.AnError)

	_, err := svc.Networks(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNetworkService_Networks_EmptyAccount(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(json.RawMessage(`""`), nil)

	networks, err := svc.Networks(ctx)
	require.NoError(t, err)
	assert.Empty(t, networks)
}

// ── id normalisation ─────────────────────────────────────────────────────────

func TestNetworkService_AcceptsURLs(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Network(ctx, "1").Return(json.RawMessage(`{"name":"home","wan_ip":"203.0.113.7"}`), nil)
	mockAdapter.EXPECT().Devices(ctx, "1").Return(json.RawMessage(`[]`), nil)
	mockAdapter.EXPECT().Device(ctx, "1", "abc").Return(json.RawMessage(`{"nickname":"tv"}`), nil)
	mockAdapter.EXPECT().Eeros(ctx, "1").Return(json.RawMessage(`[]`), nil)
	mockAdapter.EXPECT().RebootEero(ctx, "77").Return(json.RawMessage(`""`), nil)
	mockAdapter.EXPECT().RebootNetwork(ctx, "1").Return(json.RawMessage(`""`), nil)
	mockAdapter.EXPECT().RunSpeedTest(ctx, "1").Return(json.RawMessage(`{}`), nil)
	mockAdapter.EXPECT().Diagnostics(ctx, "1").Return(json.RawMessage(`{}`), nil)
	mockAdapter.EXPECT().Profiles(ctx, "1").Return(json.RawMessage(`[]`), nil)
	mockAdapter.EXPECT().Forwards(ctx, "1").Return(json.RawMessage(`[]`), nil)
	mockAdapter.EXPECT().Reservations(ctx, "1").Return(json.RawMessage(`[]`), nil)
	mockAdapter.EXPECT().Resources(ctx, "1").Return(json.RawMessage(`{}`), nil)

	network, err := svc.NetworkDetails(ctx, "/2.2/networks/1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"home","wan_ip":"203.0.113.7"}`, string(network))

	_, err = svc.Devices(ctx, "/2.2/networks/1")
	require.NoError(t, err)
	device, err := svc.Device(ctx, "/2.2/networks/1", "/2.2/networks/1/devices/abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nickname":"tv"}`, string(device))
	_, err = svc.Eeros(ctx, "1")
	require.NoError(t, err)
	_, err = svc.RebootEero(ctx, "/2.2/eeros/77")
	require.NoError(t, err)
	_, err = svc.RebootNetwork(ctx, "1")
	require.NoError(t, err)
	_, err = svc.RunSpeedTest(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Diagnostics(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Profiles(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Forwards(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Reservations(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Resources(ctx, "/2.2/networks/1/")
	require.NoError(t, err)
}

// ── Speed tests ──────────────────────────────────────────────────────────────

func TestNetworkService_LatestSpeedTest(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()
	newest := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockAdapter.EXPECT().SpeedTests(ctx, "1").Return([]models.SpeedTest{
		{Date: newest, Down: models.Rate{Value: 300.5, Units: "Mbps"}},
		{Date: newest.Add(-time.Hour)},
	}, nil)

	latest, err := svc.LatestSpeedTest(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, newest, latest.Date)
	assert.Equal(t, 300.5, latest.Down.Value)
}

func TestNetworkService_LatestSpeedTest_Empty(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SpeedTests(ctx, "1").Return([]models.SpeedTest{}, nil)

	_, err := svc.LatestSpeedTest(ctx, "1")
	assert.ErrorIs(t, err, ErrNoSpeedTests)
}

func TestNetworkService_WaitSpeedTest_FindsNewResult(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := models.SpeedTest{Date: started.Add(-time.Hour)}
	fresh := models.SpeedTest{Date: started.Add(30 * time.Second), Up: models.Rate{Value: 20, Units: "Mbps"}}

	gomock.InOrder(
		mockAdapter.EXPECT().SpeedTests(gomock.Any(), "1").Return([]models.SpeedTest{old}, nil),
		mockAdapter.EXPECT().SpeedTests(gomock.Any(), "1").Return([]models.SpeedTest{old}, nil),
		mockAdapter.EXPECT().SpeedTests(gomock.Any(), "1").Return([]models.SpeedTest{fresh, old}, nil),
	)

	result, err := svc.WaitSpeedTest(ctx, "/2.2/networks/1", started, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, fresh, result)
}

func TestNetworkService_WaitSpeedTest_Timeout(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	started := time.Now()

	mockAdapter.EXPECT().SpeedTests(gomock.Any(), "1").Return(nil, nil).MinTimes(1)

	_, err := svc.WaitSpeedTest(context.Background(), "1", started, time.Millisecond, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrSpeedTestTimeout)
}

func TestNetworkService_WaitSpeedTest_RemoteError(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)

	mockAdapter.EXPECT().SpeedTests(gomock.Any(), "1").Return(nil, assert.AnError)

	_, err := svc.WaitSpeedTest(context.Background(), "1", time.Now(), 0, 0)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, ErrSpeedTestTimeout))
}

// ── Summaries ────────────────────────────────────────────────────────────────

func TestNetworkService_DeviceSummary(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()
	bitrate := "6.5 Mbps"
	lastActive := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)
	mockAdapter.EXPECT().Devices(ctx, "1").Return(mustJSON(t, []models.Device{{
		URL:          "/2.2/networks/1/devices/aa",
		Nickname:     "tv",
		Connectivity: models.Connectivity{RxBitrate: &bitrate, Score: 0.5, ScoreBars: 3},
		Source:       models.DeviceSource{Location: "Living room"},
		LastActive:   lastActive,
	}}), nil)
	mockAdapter.EXPECT().Devices(ctx, "2").Return(mustJSON(t, []models.Device{{
		URL:      "/2.2/networks/2/devices/bb",
		Hostname: "laptop",
	}}), nil)

	summary, err := svc.DeviceSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "aa", summary[0].ID)
	assert.Equal(t, "6.5", summary[0].RxBitrate)
	assert.Equal(t, "2026-02-03 04:05:06", summary[0].LastActive)
	assert.Equal(t, "Living room", summary[0].Location)

	assert.Equal(t, "bb", summary[1].ID)
	assert.Equal(t, "0", summary[1].RxBitrate)
}

func TestNetworkService_DeviceSummary_DevicesError(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)
	mockAdapter.EXPECT().Devices(ctx, "1").Return(nil, assert.AnError)

	_, err := svc.DeviceSummary(ctx)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "network 1")
}

func TestNetworkService_EeroSummary(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)
	mockAdapter.EXPECT().Eeros(ctx, "1").Return(mustJSON(t, []models.Eero{{
		Serial:     "GGC1",
		Location:   "Office",
		Gateway:    true,
		Nightlight: &models.Nightlight{Enabled: true},
	}}), nil)
	mockAdapter.EXPECT().Eeros(ctx, "2").Return(json.RawMessage(`""`), nil)

	summary, err := svc.EeroSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "GGC1", summary[0].Serial)
	assert.True(t, summary[0].Gateway)
	assert.True(t, summary[0].Nightlight)
	assert.Empty(t, summary[0].LastHeartbeat)
}

func TestNetworkService_EeroSummary_DecodeError(t *testing.T) {
	svc, mockAdapter := newTestNetworkSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Account(ctx).Return(twoNetworksAccount(), nil)
	mockAdapter.EXPECT().Eeros(ctx, "1").Return(json.RawMessage(`{"not":"a list"}`), nil)

	_, err := svc.EeroSummary(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode eeros")
}

// ── ClientServices ───────────────────────────────────────────────────────────

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := NewClientServices(mock.NewMockSessionStore(ctrl), mock.NewMockEeroAdapter(ctrl), config.ClientConfig{}, logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.NetworkService)
	assert.True(t, services.AuthService.NeedsLogin())
}
