package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFakeBackendConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("FAKE_BACKEND_ADDRESS", "")
		t.Setenv("FAKE_BACKEND_SIGN_KEY", "")

		cfg, err := GetFakeBackendConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultFakeBackendAddress, cfg.Address)
		assert.Empty(t, cfg.SignKey)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("FAKE_BACKEND_ADDRESS", "127.0.0.1:6000")
		t.Setenv("FAKE_BACKEND_SIGN_KEY", "env-key")

		cfg, err := GetFakeBackendConfig([]string{"-a", ":7000"})
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Address)
		assert.Equal(t, "env-key", cfg.SignKey)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := GetFakeBackendConfig([]string{"-x"})
		assert.Error(t, err)
	})

	t.Run("stray argument", func(t *testing.T) {
		t.Setenv("FAKE_BACKEND_ADDRESS", "")
		_, err := GetFakeBackendConfig([]string{"serve"})
		assert.ErrorIs(t, err, ErrInvalidFakeBackendConfigs)
	})
}
