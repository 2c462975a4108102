package config

import (
	"time"

	"github.com/MKhiriev/go-food-order/internal/crypto"
)

// Default values applied to every field left empty by the other sources.
const (
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "debug"
	DefaultVersion         = "dev"
	DefaultDriver          = DriverPostgres
	DefaultHTTPAddress     = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: crypto.DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDriver},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
