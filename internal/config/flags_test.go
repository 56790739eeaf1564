package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-a", "https://api.example.com/api",
		"-d", "panda.db",
		"-c", "/etc/panda.json",
		"-storage-key", "secret",
		"-demo",
		"-log-file", "panda.log",
		"-request-timeout", "3s",
		"-refresh-interval", "2m",
		"-nutrition-address", "http://nutrition.local",
		"-nutrition-app-id", "id",
		"-nutrition-app-key", "key",
		"scan", "meal.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "panda.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/panda.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.StorageKey)
	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, "panda.log", cfg.App.LogFile)
	assert.Equal(t, 2*time.Minute, cfg.Workers.ProfileRefreshInterval)
	assert.Equal(t, "http://nutrition.local", cfg.Nutrition.Address)
	assert.Equal(t, "id", cfg.Nutrition.AppID)
	assert.Equal(t, "key", cfg.Nutrition.AppKey)
	assert.Equal(t, []string{"scan", "meal.png"}, rest)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, _, err := parseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, rest, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Empty(t, rest)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, _, err := parseFlags([]string{"-request-timeout", "soon"})
	assert.Error(t, err)
}

func TestURLAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "http with path", input: "http://127.0.0.1:5000/api"},
		{name: "https host", input: "https://panda.example.com"},
		{name: "missing scheme", input: "127.0.0.1:5000", wantErr: true},
		{name: "ftp scheme", input: "ftp://host/api", wantErr: true},
		{name: "no host", input: "http:///api", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a URLAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, a.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}
