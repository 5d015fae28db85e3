package storage

const (
	// DefaultRegion is used when Config.Region is empty.
	DefaultRegion = "us-east-1"

	// DefaultMaxSize caps the size of a downloaded document (10 MiB).
	DefaultMaxSize int64 = 10 << 20
)

// Config holds S3-compatible storage configuration for a translation document.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"LEXICON_S3_BUCKET"`

	// Key is the object key of the document (required).
	// Its extension selects JSON or YAML.
	Key string `env:"LEXICON_S3_KEY"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"AWS_ACCESS_KEY_ID"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"LEXICON_S3_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"AWS_REGION"`

	// MaxSize is the maximum document size in bytes (default: 10 MiB).
	MaxSize int64 `env:"LEXICON_S3_MAX_SIZE"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"LEXICON_S3_PATH_STYLE"`
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" || c.Key == "" {
		return ErrInvalidConfig
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
