package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	t.Run("injected values", func(t *testing.T) {
		info := NewAppBuildInfo("1.2.0", "2026-10-19", "abc123")
		assert.Equal(t, "1.2.0", info.BuildVersion())
		assert.Equal(t, "Health Panda 1.2.0 (commit abc123, built 2026-10-19)", info.String())
	})

	t.Run("missing values", func(t *testing.T) {
		info := NewAppBuildInfo("", "", "")
		assert.Equal(t, NotAvailable, info.BuildCommit())
		assert.Equal(t, "Health Panda N/A (commit N/A, built N/A)", info.String())
	})

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, "Health Panda N/A (commit N/A, built N/A)", AppBuildInfo{}.String())
	})
}
