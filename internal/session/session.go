// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tracks whether the client holds a usable bearer token and
// tears the session down when the API rejects it.
//
// Storage is the single source of truth: the session keeps no token copy of
// its own, so every request reads a fresh snapshot and a token removed by
// another writer is observed on the next read.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/MKhiriev/go-port-ops/internal/logger"
	"github.com/MKhiriev/go-port-ops/internal/store"
)

const (
	// TokenKey is the storage key of the bearer token.
	TokenKey = store.TokenKey

	// LoginRoute is where the client is sent once the session is torn down.
	LoginRoute = "/login"
)

//go:generate mockgen -source=session.go -destination=../mock/navigator_mock.go -package=mock

// Navigator moves the client to another route. Navigating to the route the
// client is already on must be harmless.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// NavigatorFunc adapts a plain function to [Navigator].
type NavigatorFunc func(ctx context.Context, route string)

func (f NavigatorFunc) Navigate(ctx context.Context, route string) {
	f(ctx, route)
}

// IsSessionExpired reports whether status means the server no longer accepts
// the bearer token. Only 401 qualifies; 403 is a permission error on a live
// session.
func IsSessionExpired(status int) bool {
	return status == http.StatusUnauthorized
}

// Session is the shared session of one client instance. It is safe for
// concurrent use.
type Session struct {
	tokens     store.TokenStorage
	navigator  Navigator
	loginRoute string
	logger     *logger.Logger

	// tearingDown counts teardowns in progress; non-zero means Expiring.
	tearingDown atomic.Int32
}

// Option configures a [Session].
type Option func(*Session)

// WithLoginRoute overrides [LoginRoute]. Empty routes are ignored.
func WithLoginRoute(route string) Option {
	return func(s *Session) {
		if route != "" {
			s.loginRoute = route
		}
	}
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a session over tokens that navigates with nav on teardown.
func New(tokens store.TokenStorage, nav Navigator, opts ...Option) *Session {
	s := &Session{
		tokens:     tokens,
		navigator:  nav,
		loginRoute: LoginRoute,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginRoute returns the route teardown navigates to.
func (s *Session) LoginRoute() string {
	return s.loginRoute
}

// Token returns the stored token, or "" when there is none. A storage read
// failure is reported as absence.
func (s *Session) Token(ctx context.Context) string {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			s.logger.Debug().Err(err).Str("func", "Session.Token").Msg("token read failed, treating as anonymous")
		}
		return ""
	}
	return token
}

// Begin stores token after a successful login, moving the session to
// Authenticated.
func (s *Session) Begin(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("error saving session token: %w", err)
	}
	return nil
}

// Teardown clears the stored token and navigates to the login route. It runs
// in full on every call; concurrent callers each clear and navigate. The
// navigation happens even when clearing fails.
func (s *Session) Teardown(ctx context.Context) error {
	s.tearingDown.Add(1)
	defer s.tearingDown.Add(-1)

	err := s.tokens.Delete(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "Session.Teardown").Msg("failed to clear session token")
		err = fmt.Errorf("error clearing session token: %w", err)
	}

	s.navigator.Navigate(ctx, s.loginRoute)

	return err
}

// End is an explicit logout. It has the same effects as [Session.Teardown].
func (s *Session) End(ctx context.Context) error {
	return s.Teardown(ctx)
}

// State derives the session state from storage.
func (s *Session) State(ctx context.Context) State {
	if s.tearingDown.Load() > 0 {
		return Expiring
	}
	if s.Token(ctx) != "" {
		return Authenticated
	}
	return Anonymous
}
