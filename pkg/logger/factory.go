package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Config is the env-driven logger configuration.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
}

// Option configures logger creation.
type Option func(*settings)

type settings struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum log level.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets output format. Panics for invalid formats: logger
// misconfiguration should prevent startup, not surface at runtime.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatJSON, FormatText:
			s.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// New creates a slog.Logger with the given options. Defaults: info level,
// JSON format, stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	switch s.format {
	case FormatText:
		handler = slog.NewTextHandler(s.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	}

	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}

	return slog.New(handler)
}

// NewFromConfig creates a logger from the env-driven Config.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	base := []Option{WithLevel(cfg.Level), WithFormat(cfg.Format)}
	return New(append(base, opts...)...)
}
