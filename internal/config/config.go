package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client configuration read from the environment
type Config struct {
	BaseURL        string        `env:"AUCTION_API_URL" envDefault:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"AUCTION_REQUEST_TIMEOUT" envDefault:"0"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	Username       string        `env:"AUCTION_USERNAME"`
	Password       string        `env:"AUCTION_PASSWORD"`
}

// NewConfig parses the client configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
