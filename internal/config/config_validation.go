// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. All problems are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTokenDuration, cfg.App.TokenDuration))
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPasswordHashCost, cfg.App.PasswordHashCost))
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.App.LogLevel))
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDSN)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrMissingHTTPAddress)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, ErrInvalidServerTimeouts)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return ErrMissingServerURL
	}
	if cfg.RequestTimeout <= 0 {
		return ErrInvalidClientTimeout
	}

	return nil
}
