// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /auth/register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	validBody := models.RegisterRequest{Username: "alice", Password: "pw", Fullname: "Alice"}

	tests := []struct {
		name        string
		body        any
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        validBody,
			wantStatus:  http.StatusOK,
			wantMessage: registrationSuccessful,
		},
		{
			name:       "invalid JSON",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "validation failure",
			body:        validBody,
			registerErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, fmt.Errorf("%w: password", validators.ErrMissingRequiredFields)),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: missing required fields: password",
		},
		{
			name:        "username taken",
			body:        validBody,
			registerErr: service.ErrUsernameTaken,
			wantStatus:  http.StatusConflict,
			wantMessage: service.ErrUsernameTaken.Error(),
		},
		{
			name:        "database failure is hidden",
			body:        validBody,
			registerErr: errors.New("pq: connection refused at 10.0.0.5"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := acceptingAuth()
			auth.registerFn = func(_ context.Context, request models.RegisterRequest) (models.Customer, error) {
				if tt.registerErr != nil {
					return models.Customer{}, tt.registerErr
				}
				return models.Customer{ID: 1, Username: request.Username}, nil
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(t, h, http.MethodPost, "/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// POST /auth/login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		loginErr    error
		tokenErr    error
		wantStatus  int
		wantMessage string
		wantOutcome string
	}{
		{
			name:        "success",
			body:        models.LoginRequest{Username: "alice", Password: "pw"},
			wantStatus:  http.StatusOK,
			wantOutcome: metrics.LoginSuccess,
		},
		{
			name:        "invalid credentials",
			body:        models.LoginRequest{Username: "alice", Password: "bad"},
			loginErr:    service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid username or password",
			wantOutcome: metrics.LoginInvalidCredentials,
		},
		{
			name:        "lookup failure",
			body:        models.LoginRequest{Username: "alice", Password: "pw"},
			loginErr:    errors.New("db down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
			wantOutcome: metrics.LoginError,
		},
		{
			name:        "token failure",
			body:        models.LoginRequest{Username: "alice", Password: "pw"},
			tokenErr:    service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
			wantOutcome: metrics.LoginError,
		},
		{
			name:       "missing fields",
			body:       models.LoginRequest{Username: "alice"},
			loginErr:   fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRequiredFields),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := acceptingAuth()
			auth.loginFn = func(_ context.Context, request models.LoginRequest) (models.Customer, error) {
				if tt.loginErr != nil {
					return models.Customer{}, tt.loginErr
				}
				return models.Customer{ID: 42, Username: request.Username}, nil
			}
			auth.createTokenFn = func(_ context.Context, customer models.Customer) (models.Token, error) {
				if tt.tokenErr != nil {
					return models.Token{}, tt.tokenErr
				}
				return models.Token{SignedString: "signed-" + customer.Username}, nil
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rec := serve(t, h, http.MethodPost, "/auth/login", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantOutcome != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.LoginsTotal.WithLabelValues(tt.wantOutcome)))
			}
			if tt.wantStatus != http.StatusOK {
				assert.Empty(t, rec.Header().Get("Authorization"))
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
				}
				return
			}

			var resp models.TokenResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "signed-alice", resp.Token)
			assert.Equal(t, "Bearer signed-alice", rec.Header().Get("Authorization"))
		})
	}
}
