package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// clearEnv blanks every variable the config reads so the host environment
// does not leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONFIG",
		"APP_STORAGE_KEY", "APP_DEMO_MODE", "APP_LOG_FILE",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"NUTRITION_ADDRESS", "NUTRITION_APP_ID", "NUTRITION_APP_KEY",
		"STORAGE_DB_DSN", "WORKERS_PROFILE_REFRESH_INTERVAL",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{StorageKey: "secret"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "local.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.StorageKey)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
}

// TestBuild_LaterConfigWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{StorageKey: "json", LogFile: "json.log"}},
		&StructuredConfig{App: App{StorageKey: "flag"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.App.StorageKey)
	assert.Equal(t, "json.log", cfg.App.LogFile)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_HasLowestPriority verifies that values from the JSON file are
// overridden by the sources that named it.
func TestWithJSON_HasLowestPriority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"storage_key": "from-json", "log_file": "json.log"},
		"workers": map[string]any{"profile_refresh_interval": "1m"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{StorageKey: "from-flag"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.App.StorageKey)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, time.Minute, cfg.Workers.ProfileRefreshInterval)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_STORAGE_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DSN", "env.db")

	cfg, rest, err := GetStructuredConfig([]string{"-storage-key", "flag-secret", "status"})
	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.App.StorageKey)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"status"}, rest)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	clearEnv(t)

	_, _, err := GetStructuredConfig([]string{"-unknown-flag"})
	assert.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_AppliesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_STORAGE_KEY", "secret")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultNutritionAddress, cfg.Nutrition.Address)
	assert.Equal(t, DefaultProfileRefreshInterval, cfg.Workers.ProfileRefreshInterval)
	assert.False(t, cfg.App.DemoMode)
	assert.False(t, cfg.Nutrition.Enabled())
	assert.Empty(t, cfg.Command)
}

func TestGetClientConfig_MissingStorageKey(t *testing.T) {
	clearEnv(t)

	_, err := GetClientConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_CommandAndDemo(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_DEMO_MODE", "true")

	cfg, err := GetClientConfig([]string{"-storage-key", "k", "lookup", "2 eggs"})
	require.NoError(t, err)
	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, []string{"lookup", "2 eggs"}, cfg.Command)
}

// ── validate ──────────────────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	cfg := &ClientConfig{App: ClientApp{StorageKey: "secret"}}
	cfg.applyDefaults()
	return cfg
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "relative address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "/api" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "nutrition id without key",
			mutate:  func(cfg *ClientConfig) { cfg.Nutrition.AppID = "id" },
			wantErr: ErrInvalidNutritionConfigs,
		},
		{
			name: "nutrition fully configured",
			mutate: func(cfg *ClientConfig) {
				cfg.Nutrition.AppID = "id"
				cfg.Nutrition.AppKey = "key"
			},
		},
		{
			name:    "negative refresh interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ProfileRefreshInterval = -time.Minute },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
