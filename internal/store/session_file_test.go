// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eero/internal/logger"
)

func newTestFileStore(t *testing.T) (SessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.cookie")
	return NewFileSessionStore(path, logger.Nop()), path
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestFileStore_LoadMissingFile(t *testing.T) {
	s, _ := newTestFileStore(t)

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_LoadTrimsWhitespace(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("  abc123\n"), 0o600))

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestFileStore_LoadDirectoryFails(t *testing.T) {
	s := NewFileSessionStore(t.TempDir(), logger.Nop())

	_, err := s.Load(context.Background())
	assert.Error(t, err)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStore(t)

	for _, token := range []string{"a", "token-with-dashes", "ÿ unicode ✓", "x y z"} {
		require.NoError(t, s.Save(ctx, token))
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, token, got)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, path := newTestFileStore(t)

	require.NoError(t, s.Save(ctx, "a-much-longer-first-token"))
	require.NoError(t, s.Save(ctx, "short"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestFileStore_SaveEmpty(t *testing.T) {
	s, path := newTestFileStore(t)

	assert.ErrorIs(t, s.Save(context.Background(), "  \n"), ErrEmptyToken)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_SavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	s, path := newTestFileStore(t)
	require.NoError(t, s.Save(context.Background(), "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// ── Clear ─────────────────────────────────────────────────────────────────────

func TestFileStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestFileStore(t)

	require.NoError(t, s.Save(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing twice is fine
	assert.NoError(t, s.Clear(ctx))
	assert.NoError(t, s.Close())
}
