package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/handiism/picsum-downloader/internal/errs"
)

// Logger holds logger configuration.
type Logger struct {
	Level string
	JSON  bool
}

// Configure builds a logger writing to w. Level names are case-insensitive.
func (c *Logger) Configure(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, errs.Config("invalid log level %q (debug, info, warn, error)", c.Level)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if c.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}
