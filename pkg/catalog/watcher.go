package catalog

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change event
// before reloading. Editors often emit several events for one save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a Catalog whenever a file on disk changes.
// The parent directory is watched rather than the file itself, so documents
// replaced by rename (atomic saves, config management) keep being picked up.
type Watcher struct {
	catalog  *Catalog
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	path     string
	debounce time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
// Default: 200 milliseconds
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger for failed reloads and watch errors.
// Default: the catalog's logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher watches path and reloads c when it is written or recreated.
// The catalog's source does not have to read path itself; any change to
// path simply triggers Reload.
//
// Example:
//
//	w, err := catalog.NewWatcher(cat, "translations.json")
//	if err != nil {
//		return err
//	}
//	w.Start(ctx)
//	defer w.Stop()
func NewWatcher(c *Catalog, path string, opts ...WatcherOption) (*Watcher, error) {
	if c == nil {
		return nil, ErrNilSource
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Join(ErrWatchFailed, err)
	}

	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, errors.Join(ErrWatchFailed, err)
	}

	w := &Watcher{
		catalog:  c,
		watcher:  fw,
		logger:   c.logger,
		path:     path,
		debounce: DefaultDebounce,
		timeout:  DefaultReloadTimeout,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start begins watching in the background. It returns immediately; the
// watcher runs until Stop is called or ctx is done.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	w.started = true

	go w.run(ctx)
}

// Stop ends watching, waits for the event loop to exit and releases the
// underlying watch. A reload in progress completes first.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() { close(w.stopCh) })

	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.doneCh
	}

	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorContext(ctx, "translations watch error",
				slog.String("path", w.path),
				slog.String("error", err.Error()),
			)

		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

// relevant reports whether event changed the watched file's contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.catalog.Reload(ctx); err != nil {
		w.logger.ErrorContext(ctx, "translations reload failed",
			slog.String("source", w.catalog.source.Name()),
			slog.String("path", w.path),
			slog.String("error", err.Error()),
		)
	}
}
