package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		date        string
		commit      string
		wantVersion string
		wantDate    string
		wantCommit  string
		wantStamped bool
	}{
		{
			name:        "all values set",
			version:     "v1.2.0",
			date:        "2026-10-01",
			commit:      "abc123",
			wantVersion: "v1.2.0",
			wantDate:    "2026-10-01",
			wantCommit:  "abc123",
			wantStamped: true,
		},
		{
			name:        "nothing injected",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "N/A",
		},
		{
			name:        "only commit injected",
			commit:      "deadbeef",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "deadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCommit, info.BuildCommit())
			assert.Equal(t, tt.wantStamped, info.IsStamped())
		})
	}
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc")

	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc", info.String())
}
