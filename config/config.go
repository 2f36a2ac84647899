package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIBaseURL     string        `envconfig:"API_BASE_URL" default:"http://localhost:5000"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	TokenFile      string        `envconfig:"TOKEN_FILE" default:""` // empty: user config dir
	CheckoutAddr   string        `envconfig:"CHECKOUT_ADDR" default:"127.0.0.1:8974"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PIZZA", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
