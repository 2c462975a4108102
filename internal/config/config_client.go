package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the command-line API client. Values
// come from FOOD_ORDER_* environment variables and may be overridden by
// the client's own flags.
type ClientConfig struct {
	// ServerURL is the base URL of the API (e.g. "http://localhost:8080").
	ServerURL string `env:"SERVER" envDefault:"http://localhost:8080"`

	// Token is a previously issued session token sent as a bearer
	// credential on protected routes.
	Token string `env:"TOKEN"`

	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// GetClientConfig reads the client configuration from the environment and
// validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "FOOD_ORDER_"}); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate re-checks the config after flag overrides were applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
