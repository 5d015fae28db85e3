package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/lexicon/pkg/logger"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

var errNoSource = errors.New("no translation source configured: use --file, --redis-url/--redis-key or --s3-bucket/--s3-key")

// Config is read from the environment first; flags that were set on the
// command line take precedence. Variables from --env-file fill in whatever
// the process environment leaves unset.
type Config struct {
	File          string `env:"LEXICON_FILE"`
	DefaultLocale string `env:"LEXICON_DEFAULT_LOCALE" envDefault:"en"`
	RedisURL      string `env:"LEXICON_REDIS_URL"`
	RedisKey      string `env:"LEXICON_REDIS_KEY"`
	S3            storage.Config
	Sentry        logger.SentryConfig
	LogLevel      slog.Level `env:"LEXICON_LOG_LEVEL" envDefault:"WARN"`
}

func loadConfig(flags *pflag.FlagSet) (Config, error) {
	environment, err := environ(flags)
	if err != nil {
		return Config{}, err
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environment})
	if err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	overlay := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	overlay("file", &cfg.File)
	overlay("default-locale", &cfg.DefaultLocale)
	overlay("redis-url", &cfg.RedisURL)
	overlay("redis-key", &cfg.RedisKey)
	overlay("s3-bucket", &cfg.S3.Bucket)
	overlay("s3-key", &cfg.S3.Key)
	overlay("s3-endpoint", &cfg.S3.Endpoint)

	if flags.Changed("verbose") {
		if v, _ := flags.GetBool("verbose"); v {
			cfg.LogLevel = slog.LevelDebug
		}
	}

	return cfg, nil
}

func environ(flags *pflag.FlagSet) (map[string]string, error) {
	vars := make(map[string]string)

	if path, _ := flags.GetString("env-file"); path != "" {
		fromFile, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading env file: %w", err)
		}
		vars = fromFile
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	return vars, nil
}
