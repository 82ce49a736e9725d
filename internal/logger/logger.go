// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the recipe server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods are
// available directly on *Logger. Request-scoped loggers are stored in the
// context by the transport middleware and read back with FromContext or
// FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

type options struct {
	out     io.Writer
	console bool
	level   zerolog.Level
}

// Option customises [NewLogger].
type Option func(*options)

// WithOutput redirects log output from os.Stdout to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithConsole switches from JSON lines to zerolog's human-readable format.
func WithConsole() Option {
	return func(o *options) { o.console = true }
}

// WithLevel sets the minimal level written by the logger.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) { o.level = level }
}

var setupGlobals sync.Once

// NewLogger builds the root logger of a process. Every entry carries the
// role label ("recipe-server"), a timestamp and a
// "func" caller field holding the fully-qualified function name.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{out: os.Stdout, level: zerolog.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	setupGlobals.Do(func() {
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})

	out := o.out
	if o.console {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: "15:04:05", NoColor: o.out != os.Stdout}
	}

	logger := zerolog.New(out).Level(o.level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevelName returns a child logger limited to the named level. Unknown
// names leave the level unchanged and return the parse error.
func (l *Logger) WithLevelName(name string) (*Logger, error) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return l, err
	}
	return &Logger{l.Level(level)}, nil
}

// WithUser returns a child *Logger carrying the "user_id" field.
func (l *Logger) WithUser(userID int64) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Logger()}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
