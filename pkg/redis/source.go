package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// Getter is the subset of the Redis client used to read a document.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Source reads a translation document stored as a plain string value.
// It satisfies catalog.Source.
type Source struct {
	client Getter
	key    string
	format i18n.Format
}

// NewSource creates a Source for key. An empty format is derived from the
// key with i18n.FormatFromPath, so "translations.yaml" reads as YAML.
func NewSource(client Getter, key string, format i18n.Format) (*Source, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	if format == "" {
		format = i18n.FormatFromPath(key)
	}
	return &Source{client: client, key: key, format: format}, nil
}

// Fetch runs GET on the document key.
func (s *Source) Fetch(ctx context.Context) ([]byte, i18n.Format, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, "", ErrKeyNotFound
	}
	if err != nil {
		return nil, "", errors.Join(ErrFetchFailed, err)
	}
	return data, s.format, nil
}

// Name identifies the key in logs.
func (s *Source) Name() string {
	return "redis:" + s.key
}
