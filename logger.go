package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON logger. Debug runs log at debug
// level and record source locations.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: debug})
	return slog.New(h)
}
