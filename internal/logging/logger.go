package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"reelpick/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	if opts.Writer == nil {
		return nil, fmt.Errorf("logging: writer is required")
	}

	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{Level: levelVar})
	case "console":
		handler = newConsoleHandler(opts.Writer, levelVar)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewFromConfig creates a logger writing to w using application config defaults.
func NewFromConfig(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Writer: w})
	}
	return New(Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: w,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
