// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the authorization gate and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrMissingCredential is returned when the request carries no
	// "Authorization" header at all.
	ErrMissingCredential = errors.New("missing authorization header")

	// ErrMalformedCredential is returned when the "Authorization" header is
	// not exactly "Bearer <token>".
	ErrMalformedCredential = errors.New("malformed authorization header")

	// ErrInvalidOrExpiredCredential is returned when the bearer token fails
	// validation for any reason.
	ErrInvalidOrExpiredCredential = errors.New("invalid or expired token")

	ErrInvalidJSON = errors.New("invalid JSON body")
)
