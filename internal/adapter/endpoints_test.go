// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-eero/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// route is one canned answer of the fake API.
type route struct {
	method string
	path   string
	body   string
}

// fakeAPI serves canned envelopes by method and path and records the session
// cookie of the last request.
type fakeAPI struct {
	routes     map[string]string
	lastCookie string
	lastBody   map[string]any
}

func newFakeAPI(t *testing.T, routes ...route) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{routes: map[string]string{}}
	for _, r := range routes {
		api.routes[r.method+" "+r.path] = r.body
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.lastCookie = ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			api.lastCookie = c.Value
		}
		api.lastBody = nil
		_ = json.NewDecoder(r.Body).Decode(&api.lastBody)

		body, ok := api.routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"meta":{"code":404,"error":"error.not_found"}}`)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

// ── login handshake ──────────────────────────────────────────────────────────

func TestLogin_ReturnsChallenge(t *testing.T) {
	api, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/login", `{"meta":{"code":200},"data":{"user_token":"challenge-1"}}`})
	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	challenge, err := a.Login(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "challenge-1", challenge)
	assert.Equal(t, "user@example.com", api.lastBody["login"])
	assert.Empty(t, api.lastCookie, "login must not send a session")
}

func TestLogin_MissingToken(t *testing.T) {
	_, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/login", `{"meta":{"code":200},"data":{}}`})
	a := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), "user@example.com")
	assert.ErrorIs(t, err, ErrMissingUserToken)
}

func TestVerifyLogin_SendsChallengeCookie(t *testing.T) {
	api, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/login/verify", `{"meta":{"code":200},"data":{"email":{"verified":true}}}`})
	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.VerifyLogin(context.Background(), "123456", "challenge-1"))
	assert.Equal(t, "challenge-1", api.lastCookie)
	assert.Equal(t, "123456", api.lastBody["code"])
	assert.Empty(t, a.Token(), "verify does not touch the stored token")
}

func TestVerifyLogin_InvalidCode(t *testing.T) {
	_, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/login/verify", `{"meta":{"code":401,"error":"invalid code"}}`})
	a := newTestAdapter(t, srv.URL)

	err := a.VerifyLogin(context.Background(), "000000", "challenge-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
	assert.Equal(t, "invalid code", apiErr.Message)
}

func TestRefreshLogin(t *testing.T) {
	api, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/login/refresh", `{"meta":{"code":200},"data":{"user_token":"fresh"}}`})
	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")

	token, err := a.RefreshLogin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, "old", api.lastCookie)
}

func TestLogout(t *testing.T) {
	api, srv := newFakeAPI(t, route{http.MethodPost, "/2.2/logout", `{"meta":{"code":200},"data":""}`})
	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, "tok", api.lastCookie)
}

// ── endpoints ────────────────────────────────────────────────────────────────

func TestAccount_NetworksURL(t *testing.T) {
	_, srv := newFakeAPI(t, route{http.MethodGet, "/2.2/account",
		`{"meta":{"code":200},"data":{"networks":{"data":[{"url":"/2.2/networks/1"}]}}}`})
	a := newTestAdapter(t, srv.URL)

	data, err := a.Account(context.Background())
	require.NoError(t, err)
	account, err := DecodeData[models.Account](data, "account")
	require.NoError(t, err)
	require.Len(t, account.Networks.Data, 1)
	assert.Equal(t, "/2.2/networks/1", account.Networks.Data[0].URL)
	assert.Equal(t, "1", account.Networks.Data[0].ID())
}

func TestAccount_KeepsUnknownFields(t *testing.T) {
	const payload = `{"networks":{"data":[{"url":"/2.2/networks/1","name":"Home","premium_status":"active"}]},"premium_details":{"tier":"plus"}}`
	_, srv := newFakeAPI(t, route{http.MethodGet, "/2.2/account", `{"meta":{"code":200},"data":` + payload + `}`})
	a := newTestAdapter(t, srv.URL)

	data, err := a.Account(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestTypedEndpoints(t *testing.T) {
	_, srv := newFakeAPI(t,
		route{http.MethodGet, "/2.2/networks/42", `{"meta":{"code":200},"data":{"url":"/2.2/networks/42","name":"home","status":"connected"}}`},
		route{http.MethodGet, "/2.2/networks/42/devices", `{"meta":{"code":200},"data":[{"url":"/2.2/networks/42/devices/abc","nickname":"tv","connectivity":{"rx_bitrate":"144.4 Mbps","score":0.9,"score_bars":4}}]}`},
		route{http.MethodGet, "/2.2/networks/42/devices/abc", `{"meta":{"code":200},"data":{"url":"/2.2/networks/42/devices/abc","hostname":"tv.local"}}`},
		route{http.MethodGet, "/2.2/networks/42/eeros", `{"meta":{"code":200},"data":[{"url":"/2.2/eeros/7","serial":"S1","nightlight":null}]}`},
		route{http.MethodPost, "/2.2/eeros/7/reboot", `{"meta":{"code":202},"data":""}`},
		route{http.MethodPost, "/2.2/networks/42/reboot", `{"meta":{"code":202}}`},
		route{http.MethodGet, "/2.2/networks/42/speedtest", `{"meta":{"code":200},"data":[{"date":"2024-05-06T07:08:09Z","up":{"value":20,"units":"Mbps"},"down":{"value":300.5,"units":"Mbps"}}]}`},
		route{http.MethodPost, "/2.2/networks/42/speedtest", `{"meta":{"code":202},"data":{"status":"running"}}`},
		route{http.MethodGet, "/2.3/networks/42/diagnostics", `{"meta":{"code":200},"data":{"status":"ok"}}`},
		route{http.MethodGet, "/2.2/networks/42/profiles", `{"meta":{"code":200},"data":[{"url":"/2.2/networks/42/profiles/1","name":"kids","paused":true}]}`},
		route{http.MethodGet, "/2.2/networks/42/forwards", `{"meta":{"code":200},"data":[{"ip":"192.168.4.2","gateway_port":80,"client_port":8080,"protocol":"tcp","enabled":true}]}`},
		route{http.MethodGet, "/2.2/networks/42/reservations", `{"meta":{"code":200},"data":[{"ip":"192.168.4.2","mac":"aa:bb","description":"nas"}]}`},
		route{http.MethodGet, "/2.3/networks/42/resources", `{"meta":{"code":200},"data":{"cpu":1}}`},
	)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	raw, err := a.Network(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"/2.2/networks/42","name":"home","status":"connected"}`, string(raw))

	raw, err = a.Devices(ctx, "42")
	require.NoError(t, err)
	devices, err := DecodeData[[]models.Device](raw, "devices")
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.NotNil(t, devices[0].Connectivity.RxBitrate)
	assert.Equal(t, "144.4 Mbps", *devices[0].Connectivity.RxBitrate)
	assert.Equal(t, 4, devices[0].Connectivity.ScoreBars)

	raw, err = a.Device(ctx, "42", "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"/2.2/networks/42/devices/abc","hostname":"tv.local"}`, string(raw))

	raw, err = a.Eeros(ctx, "42")
	require.NoError(t, err)
	eeros, err := DecodeData[[]models.Eero](raw, "eeros")
	require.NoError(t, err)
	require.Len(t, eeros, 1)
	assert.Equal(t, "S1", eeros[0].Serial)
	assert.Nil(t, eeros[0].Nightlight)

	raw, err = a.RebootEero(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))

	raw, err = a.RebootNetwork(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, `""`, string(raw))

	tests, err := a.SpeedTests(ctx, "42")
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, 300.5, tests[0].Down.Value)

	raw, err = a.RunSpeedTest(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"running"}`, string(raw))

	raw, err = a.Diagnostics(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	raw, err = a.Profiles(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"url":"/2.2/networks/42/profiles/1","name":"kids","paused":true}]`, string(raw))

	raw, err = a.Forwards(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ip":"192.168.4.2","gateway_port":80,"client_port":8080,"protocol":"tcp","enabled":true}]`, string(raw))

	raw, err = a.Reservations(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ip":"192.168.4.2","mac":"aa:bb","description":"nas"}]`, string(raw))

	raw, err = a.Resources(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cpu":1}`, string(raw))
}

func TestTypedEndpoints_DecodeError(t *testing.T) {
	_, srv := newFakeAPI(t, route{http.MethodGet, "/2.2/networks/1/speedtest", `{"meta":{"code":200},"data":{"not":"a list"}}`})
	a := newTestAdapter(t, srv.URL)

	_, err := a.SpeedTests(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode speed tests")
}

func TestTypedEndpoints_EmptyData(t *testing.T) {
	_, srv := newFakeAPI(t,
		route{http.MethodGet, "/2.2/networks/1/speedtest", `{"meta":{"code":200},"data":""}`},
		route{http.MethodGet, "/2.2/networks/2/speedtest", `{"meta":{"code":200},"data":null}`},
		route{http.MethodGet, "/2.2/account", `{"meta":{"code":200},"data":""}`},
	)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	tests, err := a.SpeedTests(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, tests)

	tests, err = a.SpeedTests(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, tests)

	data, err := a.Account(ctx)
	require.NoError(t, err)
	account, err := DecodeData[models.Account](data, "account")
	require.NoError(t, err)
	assert.Empty(t, account.Networks.Data)
}

func TestDecodeData(t *testing.T) {
	for _, data := range []string{``, `""`, `null`, ` "" `} {
		devices, err := DecodeData[[]models.Device](json.RawMessage(data), "devices")
		require.NoError(t, err, "%q", data)
		assert.Nil(t, devices, "%q", data)
	}

	_, err := DecodeData[[]models.Device](json.RawMessage(`"text"`), "devices")
	assert.ErrorContains(t, err, "decode devices")
}

func TestTypedEndpoints_NotFound(t *testing.T) {
	_, srv := newFakeAPI(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.Network(context.Background(), "missing")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestNetworkPath(t *testing.T) {
	assert.Equal(t, "networks/1", networkPath("1", ""))
	assert.Equal(t, "networks/1/eeros", networkPath(" 1/ ", "eeros"))
	assert.Equal(t, "networks/a%20b/devices", networkPath("a b", "devices"))
}
