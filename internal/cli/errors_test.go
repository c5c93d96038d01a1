package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-port-ops/internal/adapter"
	"github.com/MKhiriev/go-port-ops/internal/app"
	"github.com/MKhiriev/go-port-ops/internal/service"
	"github.com/MKhiriev/go-port-ops/internal/tui"
)

func TestUserMessage(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "fixed message", err: withMessage("custom", adapter.ErrUnauthorized), want: "custom"},
		{name: "not logged in", err: fmt.Errorf("docks: %w", service.ErrNotAuthenticated), want: app.MsgNotLoggedIn},
		{name: "expired", err: adapter.NewResponseError(401, "token is expired or invalid"), want: app.MsgSessionExpired},
		{name: "forbidden", err: adapter.NewResponseError(403, ""), want: app.MsgAccessDenied},
		{name: "conflict without message", err: adapter.NewResponseError(409, ""), want: app.MsgConflict},
		{name: "conflict with message", err: adapter.NewResponseError(409, "dock busy"), want: "dock busy"},
		{name: "server message", err: adapter.NewResponseError(404, "not found"), want: "not found"},
		{name: "network", err: fmt.Errorf("get docks: %w", dialErr), want: app.MsgServerUnavailable},
		{name: "timeout", err: context.DeadlineExceeded, want: app.MsgServerUnavailable},
		{name: "plain", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitOK},
		{name: "quit form", err: tui.ErrUserQuit, want: exitOK},
		{name: "not logged in", err: service.ErrNotAuthenticated, want: exitAuth},
		{name: "401", err: adapter.NewResponseError(401, ""), want: exitAuth},
		{name: "403", err: adapter.NewResponseError(403, ""), want: exitForbidden},
		{name: "404", err: adapter.NewResponseError(404, ""), want: exitNotFound},
		{name: "500", err: adapter.NewResponseError(500, ""), want: exitServer},
		{name: "409", err: adapter.NewResponseError(409, ""), want: exitUsage},
		{name: "empty id", err: service.ErrEmptyID, want: exitUsage},
		{name: "cobra usage", err: errors.New(`unknown command "dox" for "portctl"`), want: exitUsage},
		{name: "bad flag value", err: errors.New(`invalid --arrival "tomorrow"`), want: exitUsage},
		{name: "network", err: &net.OpError{Op: "dial", Err: errors.New("refused")}, want: exitNetwork},
		{name: "other", err: errors.New("boom"), want: exitGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
