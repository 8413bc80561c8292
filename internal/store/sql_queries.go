// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable = "sessions"
	// sessionRowID is the id of the only row the sessions table may hold.
	sessionRowID = 1
)

func selectSessionToken() (string, []any, error) {
	return sq.Select("token").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		Limit(1).
		ToSql()
}

func insertSessionToken(token string, at time.Time) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("id", "token", "updated_at").
		Values(sessionRowID, token, at.UTC()).
		ToSql()
}

func deleteSessionToken() (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
