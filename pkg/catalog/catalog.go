package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// Catalog keeps the current translation store for a Source and replaces it
// as a whole on reload. Readers never block: Store returns whatever store
// was published last.
type Catalog struct {
	source    Source
	logger    *slog.Logger
	current   atomic.Pointer[i18n.Store]
	storeOpts []i18n.Option
	onReload  []func(*i18n.Store)
	reloadMu  sync.Mutex
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for reload events.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStoreOptions forwards options to every store the catalog builds.
func WithStoreOptions(opts ...i18n.Option) Option {
	return func(c *Catalog) {
		c.storeOpts = append(c.storeOpts, opts...)
	}
}

// WithOnReload registers a callback invoked with every newly published
// store, including the first one. Callbacks run synchronously inside Reload.
func WithOnReload(fn func(*i18n.Store)) Option {
	return func(c *Catalog) {
		if fn != nil {
			c.onReload = append(c.onReload, fn)
		}
	}
}

// New loads the first store from src. A catalog that cannot load its
// initial document is not created.
func New(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	c := &Catalog{
		source: src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Store returns the current store.
func (c *Catalog) Store() *i18n.Store {
	return c.current.Load()
}

// Reload fetches and parses the document again. The new store is published
// only when it builds successfully; on error the previous store stays.
func (c *Catalog) Reload(ctx context.Context) error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	data, format, err := c.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", c.source.Name(), err)
	}

	store, err := i18n.Parse(data, format, c.storeOpts...)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.source.Name(), err)
	}

	c.current.Store(store)
	c.logger.InfoContext(ctx, "translations loaded",
		slog.String("source", c.source.Name()),
		slog.Any("locales", store.Locales()),
	)

	for _, fn := range c.onReload {
		fn(store)
	}

	return nil
}
