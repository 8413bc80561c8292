// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-eero/internal/logger"
)

// fileSessionStore keeps the token as the only content of a single file.
type fileSessionStore struct {
	path   string
	logger *logger.Logger
}

// NewFileSessionStore returns a [SessionStore] backed by the file at path.
// The file and its parent directories are created on the first Save.
func NewFileSessionStore(path string, log *logger.Logger) SessionStore {
	return &fileSessionStore{
		path:   path,
		logger: log,
	}
}

func (s *fileSessionStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("path", s.path).Msg("no session file yet")
			return "", nil
		}
		return "", fmt.Errorf("read session file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *fileSessionStore) Save(ctx context.Context, token string) (err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close session file: %w", closeErr))
		}
	}()

	if _, err = f.WriteString(token); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync session file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("session saved")
	return nil
}

func (s *fileSessionStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("session cleared")
	return nil
}

func (s *fileSessionStore) Close() error {
	return nil
}
