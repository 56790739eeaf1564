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

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"storage_key": "secret",
			"demo_mode":   true,
			"log_file":    "panda.log",
		},
		"adapter": map[string]any{
			"address":         "http://10.0.0.2:5000/api",
			"request_timeout": "15s",
		},
		"nutrition": map[string]any{
			"address": "http://nutrition.local",
			"app_id":  "id",
			"app_key": "key",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "panda.db"},
		},
		"workers": map[string]any{
			"profile_refresh_interval": "10m",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.StorageKey)
	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, "panda.log", cfg.App.LogFile)
	assert.Equal(t, "http://10.0.0.2:5000/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://nutrition.local", cfg.Nutrition.Address)
	assert.Equal(t, "id", cfg.Nutrition.AppID)
	assert.Equal(t, "key", cfg.Nutrition.AppKey)
	assert.Equal(t, "panda.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Workers.ProfileRefreshInterval)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration{Duration: 5 * time.Minute})
	require.NoError(t, err)
	assert.Equal(t, `"5m0s"`, string(data))
}
