package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"arena45/backend/internal/config"
)

// New builds the process logger: JSON in production, text otherwise.
func New(cfg config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.Log.Level, cfg.IsProduction())
}

func newLogger(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
