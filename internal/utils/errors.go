// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

// Session token errors. Callers match them with [errors.Is].
var (
	// ErrTokenInvalidSignature is returned when the token signature does not
	// verify with the configured key. Tampering, a wrong key and a
	// disallowed algorithm are deliberately indistinguishable.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenMalformed is returned when the token cannot be parsed into
	// the expected claim set.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrEmptySignKey is returned when no signing key is configured.
	ErrEmptySignKey = errors.New("token sign key is empty")

	// ErrInvalidTokenDuration is returned for a non-positive token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
