// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/internal/tui"
)

const (
	exitOK        = 0
	exitGeneric   = 1
	exitUsage     = 2
	exitAuth      = 3
	exitNotFound  = 4
	exitForbidden = 5
	exitServer    = 7
	exitNetwork   = 8
)

// userError carries a fixed message for the user while keeping the cause
// reachable for errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }

func (e *userError) Unwrap() error { return e.err }

func withMessage(msg string, err error) error {
	return &userError{msg: msg, err: err}
}

// UserMessage turns err into the line printed to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}

	var respErr *adapter.ResponseError
	hasResp := errors.As(err, &respErr)

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return app.MsgNotLoggedIn
	case errors.Is(err, service.ErrEmptyCredentials):
		return app.MsgCredentialsRequired
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return app.MsgAccessDenied
	case errors.Is(err, adapter.ErrConflict) && !(hasResp && respErr.Message != ""):
		return app.MsgConflict
	case isNetworkError(err):
		return app.MsgServerUnavailable
	}

	if hasResp && respErr.Message != "" {
		return respErr.Message
	}

	return err.Error()
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, tui.ErrUserQuit):
		return exitOK
	case errors.Is(err, service.ErrNotAuthenticated), errors.Is(err, adapter.ErrUnauthorized):
		return exitAuth
	case errors.Is(err, adapter.ErrForbidden):
		return exitForbidden
	case errors.Is(err, adapter.ErrNotFound):
		return exitNotFound
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return exitServer
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict), isUsageError(err):
		return exitUsage
	case isNetworkError(err):
		return exitNetwork
	}
	return exitGeneric
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func isUsageError(err error) bool {
	if errors.Is(err, service.ErrEmptyID) ||
		errors.Is(err, service.ErrEmptyCredentials) ||
		errors.Is(err, service.ErrEmptySearchQuery) ||
		errors.Is(err, service.ErrInvalidBerthingStatus) {
		return true
	}

	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "required flag") ||
		strings.Contains(msg, "accepts ") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.HasPrefix(msg, "invalid output format") ||
		strings.HasPrefix(msg, "invalid --")
}
