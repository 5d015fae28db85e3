package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Format selects the slog handler used by New.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"

	// FormatConsole is human-oriented text, colored when the writer is a
	// terminal.
	FormatConsole Format = "console"
)

// Option configures a logger built by New or NewWithSentry.
type Option func(*options)

type options struct {
	writer io.Writer
	format Format
	level  slog.Level
}

func defaultOptions() *options {
	return &options{
		writer: os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
}

// WithWriter sets the log destination.
// Default: os.Stdout
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithFormat selects JSON or text output.
// Default: FormatJSON
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum level.
// Default: slog.LevelInfo
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// New creates a structured logger.
func New(opts ...Option) *slog.Logger {
	return slog.New(newHandler(opts))
}

func newHandler(opts []Option) slog.Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	switch o.format {
	case FormatText:
		return slog.NewTextHandler(o.writer, handlerOpts)
	case FormatConsole:
		return tint.NewHandler(o.writer, &tint.Options{
			Level:      o.level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(o.writer),
		})
	default:
		return slog.NewJSONHandler(o.writer, handlerOpts)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
