// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by session stores. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEmptyToken is returned by Save when the token is empty after
	// trimming whitespace.
	ErrEmptyToken = errors.New("session token is empty")

	// ErrUnknownDriver is returned by [NewSessionStore] for an unsupported
	// driver name.
	ErrUnknownDriver = errors.New("unknown session store driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
