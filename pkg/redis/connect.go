package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	timeout       time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      4,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
		timeout:       3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Default: 4
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithRetry configures connection retry behavior.
// Default: 3 attempts, 2 second base interval growing linearly.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithTimeout sets the dial, read and write timeouts.
// Default: 3 seconds
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Open creates a Redis client and verifies it with PING.
// Supports both redis:// and rediss:// (TLS) URL schemes.
//
// Example:
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0",
//	    redis.WithRetry(5, time.Second),
//	)
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}

	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	redisOpts.PoolSize = o.poolSize
	redisOpts.DialTimeout = o.timeout
	redisOpts.ReadTimeout = o.timeout
	redisOpts.WriteTimeout = o.timeout

	return connect(ctx, redisOpts, o.retryAttempts, o.retryInterval)
}

// connect retries PING with a growing delay between attempts.
func connect(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}

		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if waitErr := wait(ctx, time.Duration(i+1)*interval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
