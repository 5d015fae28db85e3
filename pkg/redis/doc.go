// Package redis reads translation documents from Redis.
//
// This package wraps [github.com/redis/go-redis/v9]. A document is stored
// as a single string value, JSON or YAML, and published by whatever
// pipeline produces translations:
//
//	SET app:translations.json '{"en":{"greeting":"Hello"}}'
//
// # Usage
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	src, err := redis.NewSource(client, "app:translations.json", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cat, err := catalog.New(ctx, src)
//
// # Configuration
//
//   - WithPoolSize(n int) - Maximum number of connections (default: 4)
//   - WithRetry(attempts int, interval time.Duration) - Connection retries (default: 3 attempts, 2s)
//   - WithTimeout(d time.Duration) - Dial/read/write timeout (default: 3s)
//
// # Error Handling
//
//   - [ErrEmptyConnectionURL], [ErrFailedToParseURL] - bad connection URL
//   - [ErrConnectionFailed] - PING failed after all retry attempts
//   - [ErrKeyNotFound] - the document key does not exist
//   - [ErrFetchFailed] - any other GET failure
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package redis
