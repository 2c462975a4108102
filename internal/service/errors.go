package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUsernameTaken is returned on registration with an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials hides whether the username or the password was
	// wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMenuNotFound = errors.New("menu not found")

	// ErrCustomerNoLongerExists is returned when a still-valid token names a
	// customer whose row is gone.
	ErrCustomerNoLongerExists = errors.New("customer no longer exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
