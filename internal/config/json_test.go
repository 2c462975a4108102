package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"token_sign_key": "secret",
			"token_duration": "45m",
			"password_hash_cost": 12,
			"log_level": "error",
			"version": "2.0.0"
		},
		"storage": {"db": {"driver": "sqlite", "dsn": "file:x.db", "skip_migrations": true}},
		"server": {
			"http_address": ":8081",
			"metrics_address": ":9100",
			"request_timeout": "10s",
			"shutdown_timeout": 3000000000
		}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:x.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.SkipMigrations)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9100", cfg.Server.MetricsAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"invalid json", write("broken.json", `{"app":`)},
		{"unknown field", write("unknown.json", `{"security": {"hash_key": "x"}}`)},
		{"bad duration", write("duration.json", `{"app": {"token_duration": "soon"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(tt.path)
			require.Error(t, err)
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}
