// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// bot.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer; command handlers obtain it
// from their context via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level   zerolog.Level
	console bool
	out     io.Writer
}

// Option tunes a logger built by NewLogger.
type Option func(*options)

// WithLevel sets the minimum level emitted by the logger.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithConsole switches output from JSON lines to zerolog's human-readable
// console format.
func WithConsole(enabled bool) Option {
	return func(o *options) {
		o.console = enabled
	}
}

// WithOutput redirects log output; the default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// NewLogger constructs a *Logger for the given role label (e.g. "bot",
// "check").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     commands;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Without options output is JSON on os.Stdout at Info level.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{
		level: zerolog.InfoLevel,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	out := o.out
	if o.console {
		out = zerolog.ConsoleWriter{Out: o.out}
	}

	logger := zerolog.New(out).
		Level(o.level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel maps a textual level ("debug", "INFO", "warn", ...) to a
// zerolog.Level. An empty string means Info.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (or a disabled one), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
