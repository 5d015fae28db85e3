package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// DefaultLocale is the fallback locale used when none is configured.
const DefaultLocale = "en"

// NotFound is the default returned by the convenience lookups for string
// values when the caller supplies no default of their own.
const NotFound = "Content not found"

// WarnFunc receives the path and locale of a lookup whose path has no
// non-null value in any other locale.
type WarnFunc func(path, locale string)

// Store holds a translation document keyed by locale code.
// It is immutable after creation, making it safe for concurrent use.
// The zero value is an empty store with the "en" default locale that logs
// through slog.Default.
type Store struct {
	// Locale code -> normalized subtree.
	document map[string]any

	// Optional sink for the single-locale diagnostic.
	// Falls back to logging through logger when nil.
	warn WarnFunc

	logger *slog.Logger

	// Default/fallback locale.
	defaultLocale string

	// Top-level keys of document, sorted.
	locales []string
}

// Option configures the Store during construction.
type Option func(*Store) error

// New creates a Store from an in-memory document. The document must be a
// non-empty mapping from locale code to subtree; it is deep-copied, so later
// changes to doc are not observed.
func New(doc any, opts ...Option) (*Store, error) {
	s, err := newStore(opts)
	if err != nil {
		return nil, err
	}

	root, err := normalize(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	m, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be an object, got %T", ErrInvalidDocument, doc)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: top level object is empty", ErrInvalidDocument)
	}

	s.document = m
	s.locales = slices.Sorted(maps.Keys(m))

	return s, nil
}

// Empty returns a Store without any locales. Every lookup against it yields
// the caller's default and reports the path as unavailable. Only option
// errors are returned.
func Empty(opts ...Option) (*Store, error) {
	s, err := newStore(opts)
	if err != nil {
		return nil, err
	}
	s.document = map[string]any{}
	return s, nil
}

func newStore(opts []Option) (*Store, error) {
	s := &Store{
		defaultLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// WithDefaultLocale sets the fallback locale consulted when the requested
// locale has no value at a path.
func WithDefaultLocale(code string) Option {
	return func(s *Store) error {
		if code == "" {
			return ErrEmptyLocale
		}
		s.defaultLocale = code
		return nil
	}
}

// WithWarnHandler sets the sink for paths that exist in no locale other than
// the queried one. Useful for spotting untranslated strings in tests or
// monitoring. A nil handler restores the default logging sink.
func WithWarnHandler(fn WarnFunc) Option {
	return func(s *Store) error {
		s.warn = fn
		return nil
	}
}

// WithLogger sets the logger used by the default warn sink.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// Locales returns the locale codes present in the document, sorted.
func (s *Store) Locales() []string {
	return slices.Clone(s.locales)
}

// DefaultLocale returns the fallback locale.
func (s *Store) DefaultLocale() string {
	if s.defaultLocale == "" {
		return DefaultLocale
	}
	return s.defaultLocale
}

// HasLocale reports whether code is a top-level key of the document.
func (s *Store) HasLocale(code string) bool {
	_, ok := s.document[code]
	return ok
}

// availableElsewhere reports whether path resolves to a non-null value in
// any locale other than exclude.
func (s *Store) availableElsewhere(path, exclude string) bool {
	for _, locale := range s.locales {
		if locale == exclude {
			continue
		}
		if node, ok := resolvePath(s.document[locale], path); ok && node != nil {
			return true
		}
	}
	return false
}

func (s *Store) warnUnavailable(path, locale string) {
	if s.warn != nil {
		s.warn(path, locale)
		return
	}
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("i18n: content is not available in any other locale",
		slog.String("path", path),
		slog.String("locale", locale),
	)
}
