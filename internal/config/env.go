// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv mirrors the variables the service was historically deployed
// with. They are consulted only for fields no other source has set.
type legacyEnv struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`

	ServerPort string `env:"PORT"`
	JWTSecret  string `env:"JWT_SECRET"`
}

// parseLegacyEnv builds a postgres DSN from DB_HOST, DB_PORT, DB_USER,
// DB_PASSWORD and DB_NAME, an HTTP address from PORT and the token sign
// key from JWT_SECRET.
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	cfg := &StructuredConfig{}
	if legacy.Host != "" && legacy.Name != "" {
		dsn := url.URL{
			Scheme:   DriverPostgres,
			Host:     net.JoinHostPort(legacy.Host, legacy.Port),
			Path:     "/" + legacy.Name,
			RawQuery: "sslmode=disable",
		}
		if legacy.User != "" {
			dsn.User = url.UserPassword(legacy.User, legacy.Password)
		}
		cfg.Storage.DB.DSN = dsn.String()
	}
	if legacy.ServerPort != "" {
		cfg.Server.HTTPAddress = ":" + legacy.ServerPort
	}
	cfg.App.TokenSignKey = legacy.JWTSecret

	return cfg, nil
}
