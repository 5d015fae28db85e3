package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// ObjectGetter is the subset of the S3 client used to download documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a translation document from an S3-compatible bucket.
// It satisfies catalog.Source.
type S3Source struct {
	client ObjectGetter
	cfg    Config
}

// New creates an S3Source with static credentials from cfg.
func New(cfg Config) (*S3Source, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3Source{
		client: s3.New(s3.Options{}, opts...),
		cfg:    cfg,
	}, nil
}

// NewFromClient creates an S3Source around an existing client, for callers
// that configure AWS themselves. Credentials in cfg are not required.
func NewFromClient(client ObjectGetter, cfg Config) (*S3Source, error) {
	cfg.applyDefaults()
	if client == nil || cfg.Bucket == "" || cfg.Key == "" {
		return nil, ErrInvalidConfig
	}
	return &S3Source{client: client, cfg: cfg}, nil
}

// Fetch downloads the document. The format comes from the key extension,
// or from the object's Content-Type when the key has none.
func (s *S3Source) Fetch(ctx context.Context) ([]byte, i18n.Format, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.cfg.Key),
	})
	if err != nil {
		return nil, "", wrapS3Error(err, ErrDownloadFailed)
	}
	defer output.Body.Close()

	if output.ContentLength != nil && *output.ContentLength > s.cfg.MaxSize {
		return nil, "", fmt.Errorf("%w: %d bytes", ErrDocumentTooLarge, *output.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(output.Body, s.cfg.MaxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if int64(len(data)) > s.cfg.MaxSize {
		return nil, "", fmt.Errorf("%w: more than %d bytes", ErrDocumentTooLarge, s.cfg.MaxSize)
	}

	return data, s.format(aws.ToString(output.ContentType)), nil
}

// Name identifies the object in logs.
func (s *S3Source) Name() string {
	return "s3://" + s.cfg.Bucket + "/" + s.cfg.Key
}

func (s *S3Source) format(contentType string) i18n.Format {
	if path.Ext(s.cfg.Key) != "" {
		return i18n.FormatFromPath(s.cfg.Key)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return i18n.FormatJSON
	}
	switch {
	case strings.HasSuffix(mediaType, "yaml"):
		return i18n.FormatYAML
	case strings.HasSuffix(mediaType, "toml"):
		return i18n.FormatTOML
	default:
		return i18n.FormatJSON
	}
}
