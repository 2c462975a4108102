// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}

func TestGetPrincipalFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   models.Principal
		wantOK bool
	}{
		{
			name:   "stored principal",
			ctx:    WithPrincipal(context.Background(), models.Principal{ID: 42, Username: "alice"}),
			want:   models.Principal{ID: 42, Username: "alice"},
			wantOK: true,
		},
		{
			name:   "missing",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type under the key",
			ctx:    context.WithValue(context.Background(), PrincipalCtxKey, int64(42)),
			wantOK: false,
		},
		{
			name:   "plain string key does not collide",
			ctx:    context.WithValue(context.Background(), "principal", models.Principal{ID: 1}), //nolint:staticcheck
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetPrincipalFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
