// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/workers"
	"github.com/MKhiriev/go-eero/models"
)

type networkService struct {
	adapter   adapter.EeroAdapter
	speedTest config.ClientSpeedTest
	logger    *logger.Logger
}

func NewNetworkService(eeroAdapter adapter.EeroAdapter, speedTest config.ClientSpeedTest, log *logger.Logger) NetworkService {
	return &networkService{
		adapter:   eeroAdapter,
		speedTest: speedTest,
		logger:    log,
	}
}

func (n *networkService) Account(ctx context.Context) (json.RawMessage, error) {
	return n.adapter.Account(ctx)
}

func (n *networkService) Networks(ctx context.Context) (models.NetworkRefs, error) {
	data, err := n.adapter.Account(ctx)
	if err != nil {
		return nil, err
	}
	account, err := adapter.DecodeData[models.Account](data, "account")
	if err != nil {
		return nil, err
	}
	return models.NetworkRefs(account.Networks.Data), nil
}

func (n *networkService) NetworkDetails(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Network(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Devices(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Devices(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Device(ctx context.Context, networkID, deviceID string) (json.RawMessage, error) {
	return n.adapter.Device(ctx, models.IDFromURL(networkID), models.IDFromURL(deviceID))
}

func (n *networkService) Eeros(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Eeros(ctx, models.IDFromURL(networkID))
}

func (n *networkService) RebootEero(ctx context.Context, eeroID string) (json.RawMessage, error) {
	id := models.IDFromURL(eeroID)
	n.logger.Info().Str("func", "networkService.RebootEero").Str("eero_id", id).Msg("rebooting eero")
	return n.adapter.RebootEero(ctx, id)
}

func (n *networkService) RebootNetwork(ctx context.Context, networkID string) (json.RawMessage, error) {
	id := models.IDFromURL(networkID)
	n.logger.Info().Str("func", "networkService.RebootNetwork").Str("network_id", id).Msg("rebooting network")
	return n.adapter.RebootNetwork(ctx, id)
}

func (n *networkService) SpeedTests(ctx context.Context, networkID string) (models.SpeedTests, error) {
	results, err := n.adapter.SpeedTests(ctx, models.IDFromURL(networkID))
	if err != nil {
		return nil, err
	}
	return models.SpeedTests(results), nil
}

func (n *networkService) LatestSpeedTest(ctx context.Context, networkID string) (models.SpeedTest, error) {
	results, err := n.SpeedTests(ctx, networkID)
	if err != nil {
		return models.SpeedTest{}, err
	}
	if len(results) == 0 {
		return models.SpeedTest{}, ErrNoSpeedTests
	}
	return results[0], nil
}

func (n *networkService) RunSpeedTest(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.RunSpeedTest(ctx, models.IDFromURL(networkID))
}

func (n *networkService) WaitSpeedTest(ctx context.Context, networkID string, since time.Time, interval, timeout time.Duration) (models.SpeedTest, error) {
	if interval <= 0 {
		interval = n.speedTest.Interval
	}
	if timeout <= 0 {
		timeout = n.speedTest.Timeout
	}

	var found models.SpeedTest
	poller := &workers.Poller{
		Interval: interval,
		Timeout:  timeout,
		Check: func(ctx context.Context) (bool, error) {
			results, err := n.SpeedTests(ctx, networkID)
			if err != nil {
				return false, err
			}
			if len(results) > 0 && results[0].Date.After(since) {
				found = results[0]
				return true, nil
			}
			n.logger.Debug().Str("func", "networkService.WaitSpeedTest").Msg("speed test still running")
			return false, nil
		},
	}

	if err := poller.Run(ctx); err != nil {
		if errors.Is(err, workers.ErrPollTimeout) {
			return models.SpeedTest{}, fmt.Errorf("%w after %s", ErrSpeedTestTimeout, timeout)
		}
		return models.SpeedTest{}, err
	}
	return found, nil
}

func (n *networkService) Diagnostics(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Diagnostics(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Profiles(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Profiles(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Forwards(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Forwards(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Reservations(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Reservations(ctx, models.IDFromURL(networkID))
}

func (n *networkService) Resources(ctx context.Context, networkID string) (json.RawMessage, error) {
	return n.adapter.Resources(ctx, models.IDFromURL(networkID))
}

func (n *networkService) DeviceSummary(ctx context.Context) (models.DeviceSummaries, error) {
	networks, err := n.Networks(ctx)
	if err != nil {
		return nil, err
	}

	summary := models.DeviceSummaries{}
	for _, network := range networks {
		data, err := n.Devices(ctx, network.URL)
		if err != nil {
			return nil, fmt.Errorf("devices of network %s: %w", network.ID(), err)
		}
		devices, err := adapter.DecodeData[[]models.Device](data, "devices")
		if err != nil {
			return nil, fmt.Errorf("devices of network %s: %w", network.ID(), err)
		}
		for _, d := range devices {
			summary = append(summary, models.NewDeviceSummary(d))
		}
	}
	return summary, nil
}

func (n *networkService) EeroSummary(ctx context.Context) (models.EeroSummaries, error) {
	networks, err := n.Networks(ctx)
	if err != nil {
		return nil, err
	}

	summary := models.EeroSummaries{}
	for _, network := range networks {
		data, err := n.Eeros(ctx, network.URL)
		if err != nil {
			return nil, fmt.Errorf("eeros of network %s: %w", network.ID(), err)
		}
		eeros, err := adapter.DecodeData[[]models.Eero](data, "eeros")
		if err != nil {
			return nil, fmt.Errorf("eeros of network %s: %w", network.ID(), err)
		}
		for _, e := range eeros {
			summary = append(summary, models.NewEeroSummary(e))
		}
	}
	return summary, nil
}
