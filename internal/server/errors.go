// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPHandler is returned by NewServer when no REST handler is wired.
	ErrNoHTTPHandler = errors.New("stub api server: no http handler")

	// ErrEmptyAddress is returned by NewServer when no listen address is set.
	ErrEmptyAddress = errors.New("stub api server: empty listen address")
)
