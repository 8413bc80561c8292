// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/utils"
)

const (
	// SessionCookie is the cookie carrying the session token.
	SessionCookie = "s"
	// RequestIDHeader carries a per-request UUIDv7 for log correlation.
	RequestIDHeader = "X-Request-Id"
)

type httpEeroAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPEeroAdapter constructs the HTTP implementation of [EeroAdapter].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the request timeout and user agent.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPEeroAdapter(cfg config.ClientAdapter, log *logger.Logger) (EeroAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.UserAgent, cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpEeroAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [EeroAdapter].
func (h *httpEeroAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [EeroAdapter].
func (h *httpEeroAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Request implements [EeroAdapter] using the token set with SetToken.
func (h *httpEeroAdapter) Request(ctx context.Context, method, path string, version APIVersion, params any) (json.RawMessage, error) {
	return h.do(ctx, method, path, version, params, h.Token())
}

// do sends one request authenticated with token, which may differ from the
// stored session while a login is being verified.
func (h *httpEeroAdapter) do(ctx context.Context, method, path string, version APIVersion, params any, token string) (json.RawMessage, error) {
	method = strings.ToUpper(method)
	requestID := h.ids.Generate()
	log := h.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Str("api_version", string(version)).
		Logger()

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(RequestIDHeader, requestID)
	if token != "" {
		req.SetCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}

	if params != nil {
		switch method {
		case http.MethodGet, http.MethodDelete:
			query, err := queryValues(params)
			if err != nil {
				return nil, err
			}
			req.SetQueryParamsFromValues(query)
		default:
			req.SetHeader("Content-Type", "application/json").SetBody(params)
		}
	}

	resp, err := req.Execute(method, endpoint(version, path))
	if err != nil {
		log.Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	data, err := decodeEnvelope(resp)
	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		AnErr("error", err).
		Msg("request done")

	return data, err
}

func endpoint(version APIVersion, path string) string {
	return "/" + string(version) + "/" + strings.TrimLeft(path, "/")
}

func queryValues(params any) (url.Values, error) {
	switch p := params.(type) {
	case url.Values:
		return p, nil
	case map[string]string:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	case map[string]any:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, fmt.Sprint(v))
		}
		return values, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedParams, params)
	}
}

// resourceID trims an id for use as a path segment.
func resourceID(id string) string {
	return url.PathEscape(strings.Trim(strings.TrimSpace(id), "/"))
}
