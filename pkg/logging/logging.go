// Package logging configures the process-wide structured logger.
//
// Logs always go to stderr so stdout stays reserved for report output.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	level  *slog.Level
	json   bool
	writer io.Writer
}

// Option adjusts logger construction.
type Option func(*settings)

// WithLevel forces the log level, overriding the LOG_LEVEL environment
// variable.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// WithJSON switches the handler to JSON output.
func WithJSON() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithWriter redirects log output, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}

// SetDefaultStructuredLogger installs the process-wide slog logger.
// Every record carries the service name and version. The level comes
// from the LOG_LEVEL environment variable unless overridden.
func SetDefaultStructuredLogger(name, version string, opts ...Option) {
	s := settings{writer: os.Stderr}
	for _, opt := range opts {
		opt(&s)
	}

	level := LevelFromEnv()
	if s.level != nil {
		level = *s.level
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if s.json {
		handler = slog.NewJSONHandler(s.writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(s.writer, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.String("service", name),
		slog.String("version", version),
	)

	slog.SetDefault(logger)
}

// LevelFromEnv resolves the log level from the LOG_LEVEL environment
// variable, defaulting to info when unset or unparseable.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel parses a level name such as "DEBUG" or "warn". Unknown
// names resolve to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
