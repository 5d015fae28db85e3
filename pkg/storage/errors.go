package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Sentinel errors for storage operations.
var (
	ErrInvalidConfig    = errors.New("storage: invalid configuration")
	ErrNotFound         = errors.New("storage: document not found")
	ErrAccessDenied     = errors.New("storage: access denied")
	ErrDownloadFailed   = errors.New("storage: download failed")
	ErrDocumentTooLarge = errors.New("storage: document exceeds size limit")
)

// wrapS3Error wraps S3 errors with appropriate sentinel errors.
// Uses %v (not %w) for the original error to normalize error types:
// callers match sentinels with errors.Is, not AWS types with errors.As.
func wrapS3Error(err error, fallback error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}

	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %v", fallback, err)
}
