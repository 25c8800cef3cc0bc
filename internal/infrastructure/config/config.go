package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Token TokenConfig
}

type APIConfig struct {
	// BaseURL is the primary backend endpoint.
	BaseURL string `env:"HOUSING_API_URL, default=http://localhost:5001/api"`
	// FallbackURLs are probed in order when the primary endpoint is down.
	FallbackURLs []string      `env:"HOUSING_FALLBACK_URLS, delimiter=;"`
	Timeout      time.Duration `env:"HOUSING_TIMEOUT, default=10s"`
	RetryCount   int           `env:"HOUSING_RETRY_COUNT, default=3"`
}

type TokenConfig struct {
	// File overrides the default token location under the user config dir.
	File string `env:"HOUSING_TOKEN_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
