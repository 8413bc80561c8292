// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eero/internal/config"
	"github.com/MKhiriev/go-eero/internal/logger"
)

func TestNewSessionStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cookie")

	s, err := NewSessionStore(context.Background(), config.ClientSession{
		Driver: config.DriverFile,
		Path:   path,
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &fileSessionStore{}, s)
	require.NoError(t, s.Save(context.Background(), "tok"))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestNewSessionStore_UnknownDriver(t *testing.T) {
	_, err := NewSessionStore(context.Background(), config.ClientSession{Driver: "etcd"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSessionQueries(t *testing.T) {
	query, args, err := selectSessionToken()
	require.NoError(t, err)
	assert.Equal(t, "SELECT token FROM sessions WHERE id = ? LIMIT 1", query)
	assert.Equal(t, []any{sessionRowID}, args)

	query, args, err = deleteSessionToken()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE id = ?", query)
	assert.Equal(t, []any{sessionRowID}, args)
}
