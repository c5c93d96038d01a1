// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/service"
)

// ErrUserQuit is returned when the form is closed without signing in.
var ErrUserQuit = errors.New("login cancelled by user")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgInvalidEmailPassword
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgEmailAlreadyExists
	case errors.Is(err, service.ErrEmptyCredentials):
		return app.MsgCredentialsRequired
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}

	return err.Error()
}
