// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyIdentity    = errors.New("login identity is empty")
	ErrEmptyCode        = errors.New("verification code is empty")
	ErrNoChallenge      = errors.New("no login challenge: start a login first")
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrLoadingSession  = errors.New("error loading session")
	ErrSavingSession   = errors.New("error saving session")
	ErrClearingSession = errors.New("error clearing session")

	ErrNoSpeedTests     = errors.New("no speed test results")
	ErrSpeedTestTimeout = errors.New("speed test did not finish in time")
)
