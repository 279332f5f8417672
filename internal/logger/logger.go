// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and helpers the
// feed client uses.
//
// Logger embeds zerolog.Logger so the whole zerolog API is available on
// *Logger. Components receive a *Logger at construction time and derive a
// child with [Logger.Component]; request-scoped loggers travel in the
// context and are read back with [FromContext].
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a JSON *Logger writing to os.Stdout.
//
// Every entry carries the role label, a timestamp and a "func" field with the
// fully-qualified name of the calling function. The global level is Debug.
func NewLogger(role string) *Logger {
	setupGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but appends to the file at path. An
// empty path selects a "logs" file next to the executable. When the file
// cannot be opened the logger falls back to stdout.
func NewClientLogger(role, path string) *Logger {
	setupGlobals()

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var w io.Writer = os.Stdout
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		w = logFile
	}

	return newLogger(w, role)
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting every field of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Component returns a child logger tagged with a "component" field.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// WithContext attaches the logger to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx by zerolog's log.Ctx helper.
// When none is attached zerolog falls back to its default logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Printf adapts the logger to printf-style sinks such as goose.
type Printf struct {
	l *Logger
}

// NewPrintf wraps l.
func NewPrintf(l *Logger) Printf {
	return Printf{l: l}
}

// Printf logs at info level.
func (p Printf) Printf(format string, v ...any) {
	p.l.Info().Msg(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It never exits the process.
func (p Printf) Fatalf(format string, v ...any) {
	p.l.Error().Msg(fmt.Sprintf(format, v...))
}

// Errorf logs at error level.
func (p Printf) Errorf(format string, v ...any) {
	p.l.Error().Msg(fmt.Sprintf(format, v...))
}

// Warnf logs at warn level.
func (p Printf) Warnf(format string, v ...any) {
	p.l.Warn().Msg(fmt.Sprintf(format, v...))
}

// Debugf logs at debug level.
func (p Printf) Debugf(format string, v ...any) {
	p.l.Debug().Msg(fmt.Sprintf(format, v...))
}
