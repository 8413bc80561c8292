// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/internal/logger"
	"github.com/MKhiriev/go-eero/internal/store"
)

// AuthState is a step of the login handshake.
type AuthState int

const (
	Unauthenticated AuthState = iota
	ChallengeIssued
	Authenticated
)

func (s AuthState) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case ChallengeIssued:
		return "challenge issued"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("AuthState(%d)", int(s))
	}
}

type authService struct {
	store   store.SessionStore
	adapter adapter.EeroAdapter
	logger  *logger.Logger

	state     AuthState
	token     string
	challenge string
}

func NewAuthService(sessionStore store.SessionStore, eeroAdapter adapter.EeroAdapter, log *logger.Logger) AuthService {
	return &authService{
		store:   sessionStore,
		adapter: eeroAdapter,
		logger:  log,
		state:   Unauthenticated,
	}
}

func (a *authService) RestoreSession(ctx context.Context) error {
	token, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadingSession, err)
	}
	if token == "" {
		a.logger.Debug().Str("func", "authService.RestoreSession").Msg("no stored session")
		return nil
	}

	a.attach(token)
	return nil
}

func (a *authService) BeginLogin(ctx context.Context, identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", ErrEmptyIdentity
	}

	challenge, err := a.adapter.Login(ctx, identity)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.BeginLogin").Msg("login request rejected")
		return "", fmt.Errorf("begin login: %w", err)
	}

	a.challenge = challenge
	a.state = ChallengeIssued
	return challenge, nil
}

// VerifyLogin attaches the token in memory before persisting it, so a failed
// save still leaves this process authenticated and reports the save error.
func (a *authService) VerifyLogin(ctx context.Context, code, challenge string) error {
	challenge = strings.TrimSpace(challenge)
	if challenge == "" {
		challenge = a.challenge
	}
	if challenge == "" {
		return ErrNoChallenge
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyCode
	}

	if err := a.adapter.VerifyLogin(ctx, code, challenge); err != nil {
		a.logger.Err(err).Str("func", "authService.VerifyLogin").Msg("verification rejected")
		// keep the challenge so the same handshake can be retried
		a.challenge = challenge
		a.state = ChallengeIssued
		return fmt.Errorf("verify login: %w", err)
	}

	a.attach(challenge)
	a.challenge = ""

	if err := a.store.Save(ctx, challenge); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}
	return nil
}

// NeedsLogin checks the token held in memory, not the store. The two only
// differ after a verify or refresh whose save failed.
func (a *authService) NeedsLogin() bool {
	return a.token == ""
}

func (a *authService) State() AuthState {
	return a.state
}

func (a *authService) RefreshSession(ctx context.Context) error {
	if a.token == "" {
		return ErrNotAuthenticated
	}

	token, err := a.adapter.RefreshLogin(ctx)
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}

	a.attach(token)
	if err = a.store.Save(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}
	return nil
}

// Logout ignores remote failures: the local session is dropped either way.
func (a *authService) Logout(ctx context.Context) error {
	if a.token != "" {
		if err := a.adapter.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "authService.Logout").Msg("remote logout failed")
		}
	}

	a.adapter.SetToken("")
	a.token = ""
	a.challenge = ""
	a.state = Unauthenticated

	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrClearingSession, err)
	}
	return nil
}

func (a *authService) attach(token string) {
	a.adapter.SetToken(token)
	a.token = token
	a.state = Authenticated
}
