package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/pkg/catalog"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/redis"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lexicon",
		Short:        "Inspect translation documents",
		Long:         `Looks up dot-separated paths in a locale-keyed translation document, with fallback to the default locale.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("file", "", "path to a JSON, YAML or TOML translation document")
	flags.String("default-locale", i18n.DefaultLocale, "fallback locale")
	flags.String("redis-url", "", "Redis connection URL (redis:// or rediss://)")
	flags.String("redis-key", "", "Redis key holding the document")
	flags.String("s3-bucket", "", "S3 bucket holding the document")
	flags.String("s3-key", "", "S3 object key of the document")
	flags.String("s3-endpoint", "", "custom S3 endpoint (MinIO, ...)")
	flags.String("env-file", "", "read LEXICON_* variables from a dotenv file")
	flags.BoolP("verbose", "v", false, "log debug output")

	root.AddCommand(
		newGetCmd(),
		newLocalesCmd(),
		newCheckCmd(),
		newWatchCmd(),
	)

	return root
}

// session is an open catalog together with what it took to open it.
type session struct {
	cfg     Config
	log     *slog.Logger
	catalog *catalog.Catalog

	release func()
	flush   func()
}

// Store returns the catalog's current store.
func (s *session) Store() *i18n.Store {
	return s.catalog.Store()
}

// close releases the source and flushes buffered log output. Lookups made
// before close may still log, so it runs once the command is done.
func (s *session) close() {
	if s.release != nil {
		s.release()
	}
	if s.flush != nil {
		s.flush()
	}
}

// openSession loads the configured source into a catalog. The caller must
// call close when the command finishes.
func openSession(cmd *cobra.Command, opts ...catalog.Option) (*session, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, flush := logger.NewWithSentry(cfg.Sentry,
		logger.WithFormat(logger.FormatConsole),
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithLevel(cfg.LogLevel),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	src, closeFn, err := newSource(ctx, cfg)
	if err != nil {
		flush()
		return nil, err
	}

	log.DebugContext(ctx, "loading translations", slog.String("source", src.Name()))

	opts = append([]catalog.Option{
		catalog.WithLogger(log),
		catalog.WithStoreOptions(
			i18n.WithDefaultLocale(cfg.DefaultLocale),
			i18n.WithLogger(log),
		),
	}, opts...)

	cat, err := catalog.New(ctx, src, opts...)
	if err != nil {
		closeFn()
		flush()
		return nil, err
	}

	return &session{cfg: cfg, log: log, catalog: cat, release: closeFn, flush: flush}, nil
}

func newSource(ctx context.Context, cfg Config) (catalog.Source, func(), error) {
	noop := func() {}

	switch {
	case cfg.File != "":
		return catalog.FileSource(cfg.File), noop, nil

	case cfg.RedisURL != "" || cfg.RedisKey != "":
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		src, err := redis.NewSource(client, cfg.RedisKey, "")
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return src, func() { _ = client.Close() }, nil

	case cfg.S3.Bucket != "" || cfg.S3.Key != "":
		if cfg.S3.Endpoint != "" {
			cfg.S3.PathStyle = true
		}
		src, err := storage.New(cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	}

	return nil, noop, errNoSource
}
