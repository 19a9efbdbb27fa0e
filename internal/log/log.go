// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for riskpulse using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Log output formats accepted by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Level maps verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet takes precedence over verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// NewHandler builds a text or JSON handler writing to w. An empty format
// means text.
func NewHandler(w io.Writer, verbose, quiet bool, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}
	switch format {
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (must be %s or %s)", format, FormatText, FormatJSON)
	}
}

// Setup configures the default slog logger to write to stderr based on
// verbosity flags and the log format. On error the default logger is left
// unchanged.
func Setup(verbose, quiet bool, format string) error {
	handler, err := NewHandler(os.Stderr, verbose, quiet, format)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
