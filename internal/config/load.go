package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values. Every key can be overridden through a
// DECKPUSH_-prefixed environment variable.
const (
	DefaultAnkiURL   = "http://127.0.0.1:8765"
	DefaultModelName = "Deckpush Interactive"
	DefaultBatchSize = 10
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// envPrefix is the environment variable prefix: DECKPUSH_ANKI_URL maps to
// the anki.url key, DECKPUSH_LOG_LEVEL to log.level, and so on.
const envPrefix = "DECKPUSH"

// Load builds the configuration from defaults and environment variables.
// Environment variables take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("anki.url", DefaultAnkiURL)
	v.SetDefault("anki.model_name", DefaultModelName)
	v.SetDefault("anki.batch_size", DefaultBatchSize)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
