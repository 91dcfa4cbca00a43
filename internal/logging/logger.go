// Package logging configures the process-wide slog logger and enforces the
// phone-number redaction rule on every sink.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default logger: JSON records at the given minimum
// level, wrapped in the phone-masking handler. Called once at startup.
func Setup(level string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	inner := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	slog.SetDefault(slog.New(NewMaskingHandler(inner)))
}

// ParseLevel maps a configured level name to a slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
