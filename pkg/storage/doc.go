// Package storage reads translation documents from S3-compatible object storage.
//
// # Basic Usage
//
//	src, err := storage.New(storage.Config{
//		Bucket:    "translations",
//		Key:       "app/translations.json",
//		Region:    "eu-central-1",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cat, err := catalog.New(ctx, src)
//
// For MinIO and other S3-compatible services set Endpoint and PathStyle.
//
// # Error Handling
//
// S3 failures are normalized to sentinel errors: ErrNotFound for missing
// objects or buckets, ErrAccessDenied for permission errors and
// ErrDownloadFailed otherwise. Documents larger than Config.MaxSize fail
// with ErrDocumentTooLarge.
package storage
