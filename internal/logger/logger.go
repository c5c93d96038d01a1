// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-port-ops client, CLI and stub API.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// *Logger also satisfies resty's Logger interface, so transport diagnostics
// of the shared HTTP client end up in the same structured stream.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// clientLogFile is the name of the portctl log file.
const clientLogFile = "portctl.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON stdout logger of the stub API, tagged with role.
// Every entry carries a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	setupGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns the portctl logger. Entries go to
// <user cache dir>/portctl/portctl.log so they never mix with command
// output on stdout; stderr is used when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	setupGlobals()

	var out io.Writer = os.Stderr
	if path, err := clientLogPath(); err == nil {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func clientLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "portctl")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, clientLogFile), nil
}

func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a child logger that drops entries below level, one of
// zerolog's level names ("debug", "info", "warn", ...). An unknown name
// leaves the level unchanged and is reported as an error.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return l.GetChildLogger(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	return &Logger{l.Level(lvl)}, nil
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Errorf implements resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Str("component", "resty").Msg(fmt.Sprintf(format, v...))
}

// FromRequest extracts the zerolog.Logger stored in the request's context and
// returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If no logger has
// been attached, zerolog's disabled logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
