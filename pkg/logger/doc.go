// Package logger builds log/slog loggers with optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithWriter(os.Stderr),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	store, err := i18n.Load("translations.json", i18n.WithLogger(log))
//
// FormatConsole writes compact lines for humans and colors them when the
// writer is a terminal.
//
// # Sentry Integration
//
// NewWithSentry sends records to the local handler and, when a DSN is set,
// to Sentry as well:
//
//	log, flush := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//	defer flush()
//
// With MinLevel at Warn, the single-locale warnings produced by i18n lookups
// are searchable in Sentry; errors become Issues. An empty DSN or a failed
// initialization falls back to local logging only.
package logger
