// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-eero/models"
)

// Login implements [EeroAdapter].
func (h *httpEeroAdapter) Login(ctx context.Context, identity string) (string, error) {
	data, err := h.do(ctx, http.MethodPost, "login", V22, models.LoginRequest{Login: identity}, "")
	if err != nil {
		return "", err
	}

	token, err := DecodeData[models.UserToken](data, "login response")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(token.UserToken) == "" {
		return "", ErrMissingUserToken
	}

	return token.UserToken, nil
}

// VerifyLogin implements [EeroAdapter]. The request is authenticated with
// the challenge, not with the stored session.
func (h *httpEeroAdapter) VerifyLogin(ctx context.Context, code, challenge string) error {
	_, err := h.do(ctx, http.MethodPost, "login/verify", V22, models.LoginVerifyRequest{Code: code}, challenge)
	return err
}

// RefreshLogin implements [EeroAdapter].
func (h *httpEeroAdapter) RefreshLogin(ctx context.Context) (string, error) {
	data, err := h.Request(ctx, http.MethodPost, "login/refresh", V22, nil)
	if err != nil {
		return "", err
	}

	token, err := DecodeData[models.UserToken](data, "refresh response")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(token.UserToken) == "" {
		return "", ErrMissingUserToken
	}

	return token.UserToken, nil
}

// Logout implements [EeroAdapter].
func (h *httpEeroAdapter) Logout(ctx context.Context) error {
	_, err := h.Request(ctx, http.MethodPost, "logout", V22, nil)
	return err
}

func (h *httpEeroAdapter) Account(ctx context.Context) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, "account", V22, nil)
}

func (h *httpEeroAdapter) Network(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, ""), V22, nil)
}

func (h *httpEeroAdapter) Devices(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "devices"), V22, nil)
}

func (h *httpEeroAdapter) Device(ctx context.Context, networkID, deviceID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "devices/"+resourceID(deviceID)), V22, nil)
}

func (h *httpEeroAdapter) Eeros(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "eeros"), V22, nil)
}

func (h *httpEeroAdapter) RebootEero(ctx context.Context, eeroID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodPost, fmt.Sprintf("eeros/%s/reboot", resourceID(eeroID)), V22, nil)
}

func (h *httpEeroAdapter) RebootNetwork(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodPost, networkPath(networkID, "reboot"), V22, nil)
}

// SpeedTests returns the stored results, most recent first.
func (h *httpEeroAdapter) SpeedTests(ctx context.Context, networkID string) ([]models.SpeedTest, error) {
	data, err := h.Request(ctx, http.MethodGet, networkPath(networkID, "speedtest"), V22, nil)
	if err != nil {
		return nil, err
	}
	return DecodeData[[]models.SpeedTest](data, "speed tests")
}

func (h *httpEeroAdapter) RunSpeedTest(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodPost, networkPath(networkID, "speedtest"), V22, nil)
}

func (h *httpEeroAdapter) Diagnostics(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "diagnostics"), V23, nil)
}

func (h *httpEeroAdapter) Profiles(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "profiles"), V22, nil)
}

func (h *httpEeroAdapter) Forwards(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "forwards"), V22, nil)
}

func (h *httpEeroAdapter) Reservations(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "reservations"), V22, nil)
}

func (h *httpEeroAdapter) Resources(ctx context.Context, networkID string) (json.RawMessage, error) {
	return h.Request(ctx, http.MethodGet, networkPath(networkID, "resources"), V23, nil)
}

// networkPath builds "networks/{id}" or "networks/{id}/{sub}".
func networkPath(networkID, sub string) string {
	path := "networks/" + resourceID(networkID)
	if sub != "" {
		path += "/" + sub
	}
	return path
}
