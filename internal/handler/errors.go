// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// ErrNoBackend is returned by NewHandlers without a stub backend.
	ErrNoBackend = errors.New("handlers: no backend")

	// ErrNoAddress is returned by NewHandlers when the server has no listen
	// address, so nothing would serve the routes.
	ErrNoAddress = errors.New("handlers: no http address")
)
