package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	ErrInvalidFlags = errors.New("invalid command-line flags")

	// ErrMissingTokenSignKey indicates that no session token signing key was
	// configured.
	ErrMissingTokenSignKey     = errors.New("token sign key is required")
	ErrInvalidTokenDuration    = errors.New("token duration must be positive")
	ErrInvalidPasswordHashCost = errors.New("password hash cost is out of range")
	ErrInvalidLogLevel         = errors.New("unknown log level")

	ErrUnknownDriver = errors.New("unknown database driver")
	// ErrMissingDSN indicates that neither STORAGE_DB_DATABASE_URI, -d, the
	// JSON file nor the legacy DB_* variables produced a DSN.
	ErrMissingDSN = errors.New("database DSN is required")

	ErrMissingHTTPAddress    = errors.New("http address is required")
	ErrInvalidServerTimeouts = errors.New("server timeouts must be positive")

	ErrMissingServerURL     = errors.New("server url is required")
	ErrInvalidClientTimeout = errors.New("client request timeout must be positive")
)
