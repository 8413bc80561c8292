// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/store"
)

type ClientServices struct {
	AuthService    AuthService
	NetworkService NetworkService
}

func NewClientServices(sessionStore store.SessionStore, eeroAdapter adapter.EeroAdapter, cfg config.ClientConfig, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewAuthService(sessionStore, eeroAdapter, log),
		NetworkService: NewNetworkService(eeroAdapter, cfg.SpeedTest, log),
	}
}
