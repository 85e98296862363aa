package slogobs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding of the default handler.
type Format string

const (
	// FormatText emits human-readable key=value lines.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per log record.
	FormatJSON Format = "json"
)

type config struct {
	logger *slog.Logger
	format Format
	level  slog.Level
	output io.Writer
}

// Option configures the observer created by [New].
type Option func(*config)

// WithLogger uses an existing slog.Logger instead of constructing one.
// When set, format, level, and output options are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFormat selects the log output format.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithLevel sets the minimum level emitted.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput redirects log output, defaulting to stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// applyOptions resolves the final configuration. Defaults come from the
// PLAYGROUND_LOG_FORMAT and PLAYGROUND_LOG_LEVEL environment variables,
// falling back to text format at INFO level.
func applyOptions(opts ...Option) config {
	cfg := config{
		format: formatFromEnv(),
		level:  levelFromEnv(),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func formatFromEnv() Format {
	if strings.EqualFold(os.Getenv("PLAYGROUND_LOG_FORMAT"), "json") {
		return FormatJSON
	}
	return FormatText
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("PLAYGROUND_LOG_LEVEL")) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
