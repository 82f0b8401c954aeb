// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the sales-keeper server.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Components receive a *Logger at construction time; request
// handlers and the encryption gate pick the request-scoped logger out of the
// context with FromContext or FromRequest.
//
// Sensitive field values are never logged by this codebase. Log the field
// name and, at most, the length of a value.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stdout at debug level.
//
// Every entry carries a "role" field naming the component (e.g. "server",
// "reencrypt-worker"), a timestamp and a "func" caller field holding the
// fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a human-readable logger writing to os.Stderr, so
// command output on os.Stdout stays machine-readable.
func NewClientLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevel returns a copy of l that emits entries at level and above.
// level is a zerolog level name ("debug", "info", "warn", ...); an empty
// level leaves l unchanged.
func (l *Logger) WithLevel(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting every field of l. Fields
// added to the child do not leak into the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
//
// Without one it returns zerolog's disabled logger (never nil), so callers
// that must not lose an entry check GetLevel() against zerolog.Disabled and
// fall back to their own logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
