package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// DefaultFlushTimeout bounds the flush returned by NewWithSentry.
const DefaultFlushTimeout = 2 * time.Second

// sentryFlush is replaced in tests.
var sentryFlush = sentry.Flush

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level
	// FlushTimeout bounds how long flush waits for buffered events and logs.
	FlushTimeout time.Duration `env:"SENTRY_FLUSH_TIMEOUT" envDefault:"2s"`
}

// NewWithSentry creates a logger that writes locally and to Sentry.
// If DSN is empty, only local logging is enabled (graceful fallback for local dev).
// Missing-translation warnings reach Sentry as logs when MinLevel is Warn or lower.
//
// Sentry buffers events and logs; call flush before the process exits or
// they are lost. flush is a no-op when Sentry is not in use.
func NewWithSentry(cfg SentryConfig, opts ...Option) (log *slog.Logger, flush func()) {
	local := newHandler(opts)
	noop := func() {}

	if cfg.DSN == "" {
		return slog.New(local), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(local), noop
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	timeout := cfg.FlushTimeout
	if timeout <= 0 {
		timeout = DefaultFlushTimeout
	}

	return slog.New(fanout{local, sentryHandler}), func() { sentryFlush(timeout) }
}

// fanout forwards records to every handler that accepts the level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, rec.Level) {
			errs = append(errs, h.Handle(ctx, rec.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
