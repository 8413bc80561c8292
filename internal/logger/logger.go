// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// eero client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain call-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level, or an unknown one, is configured.
// Anything chattier would interleave with command output on the terminal.
const DefaultLevel = zerolog.WarnLevel

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	file io.Closer
}

// NewLogger constructs a *Logger writing JSON lines to w for the given role
// label (e.g. "eero-cli", "adapter").
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp field;
//   - a "func" caller field holding the fully-qualified function name
//     instead of the default file:line format.
func NewLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// NewClientLogger builds the logger used by the eero command.
//
// Entries go to logPath (created with parent directories, opened for append)
// or to stderr when logPath is empty or cannot be opened, so stdout stays
// reserved for command output. level is parsed with zerolog.ParseLevel and
// falls back to [DefaultLevel].
func NewClientLogger(role, logPath, level string) *Logger {
	lvl := ParseLevel(level)

	logPath = strings.TrimSpace(logPath)
	if logPath == "" {
		return NewLogger(role, os.Stderr, lvl)
	}

	if dir := filepath.Dir(logPath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l := NewLogger(role, os.Stderr, lvl)
		l.Warn().Err(err).Str("path", logPath).Msg("cannot open log file, logging to stderr")
		return l
	}

	l := NewLogger(role, logFile, lvl)
	l.file = logFile
	return l
}

// ParseLevel converts a textual level ("debug", "info", ...) into a zerolog
// level. Empty or unknown values yield [DefaultLevel].
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close releases the log file opened by [NewClientLogger]. It is a no-op for
// loggers writing to stderr or to a caller-supplied writer.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// WithContext attaches the logger to ctx so that [FromContext] can retrieve it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (or a disabled one), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
