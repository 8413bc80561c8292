// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-eero/internal/logger"
)

// sqliteSessionStore keeps the token in the single-row sessions table.
type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSessionStore returns a [SessionStore] over an already migrated db.
func NewSQLiteSessionStore(db *DB, log *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteSessionStore) Load(ctx context.Context) (string, error) {
	query, args, err := selectSessionToken()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		s.logger.Err(err).Str("func", "sqliteSessionStore.Load").Msg("failed to query session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return strings.TrimSpace(token), nil
}

// Save replaces the row inside one transaction so a failed insert keeps the
// previous token.
func (s *sqliteSessionStore) Save(ctx context.Context, token string) (err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	deleteQuery, deleteArgs, err := deleteSessionToken()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := insertSessionToken(token, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Save").Msg("failed to delete previous session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Save").Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	s.logger.Debug().Msg("session saved")
	return nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	query, args, err := deleteSessionToken()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Clear").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().Msg("session cleared")
	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
