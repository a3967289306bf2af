// Package logger builds the zerolog loggers shared by every component.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every log line.
const ServiceName = "child-wallet"

// New returns the process logger on stdout. Pretty switches to the
// coloured console writer for local runs.
func New(level string, pretty bool) zerolog.Logger {
	if !pretty {
		return build(os.Stdout, level).Caller().Logger()
	}
	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return build(console, level).Caller().Logger()
}

// NewWithWriter logs JSON to w without caller info.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(w, level).Logger()
}

// ForChild scopes log to one child wallet.
func ForChild(log zerolog.Logger, childID string) zerolog.Logger {
	return log.With().Str("child_id", childID).Logger()
}

func build(w io.Writer, level string) zerolog.Context {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", ServiceName)
}

// ParseLevel accepts zerolog level names plus "warning". Blank or unknown
// values fall back to info.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
