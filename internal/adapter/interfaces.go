// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the food ordering REST API.
//
// [APIClient] hides the HTTP details from the command-line client: request
// encoding, the bearer credential and the mapping of non-2xx statuses to the
// sentinel errors in errors.go, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

// APIClient talks to one food ordering server.
type APIClient interface {
	// SetToken stores the bearer token attached to every following request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Ping reports database liveness together with the database clock.
	Ping(ctx context.Context) (models.PingResponse, error)

	Register(ctx context.Context, request models.RegisterRequest) (models.MessageResponse, error)

	// Login exchanges credentials for a session token and stores it via
	// SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error)

	ListMenus(ctx context.Context) ([]models.MenuItem, error)

	// ListCustomers, PlaceOrder and OrderSummary require a token.
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	PlaceOrder(ctx context.Context, request models.OrderRequest) (models.OrderCreatedResponse, error)
	OrderSummary(ctx context.Context) (models.OrderSummary, error)
}
