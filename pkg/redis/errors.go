package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrFailedToParseURL   = errors.New("redis: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("redis: failed to establish connection")
	ErrNilClient          = errors.New("redis: client is not provided")
	ErrEmptyKey           = errors.New("redis: document key cannot be empty")
	ErrKeyNotFound        = errors.New("redis: document key not found")
	ErrFetchFailed        = errors.New("redis: failed to fetch document")
)
