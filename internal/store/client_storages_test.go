// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/crypto"
	"github.com/MKhiriev/health-panda/internal/logger"
)

func newTestStorages(t *testing.T, dsn, secret string) *ClientStorages {
	t.Helper()
	sealer, err := crypto.NewSealer(secret)
	require.NoError(t, err)

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, sealer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

// TestClientStorages_TokenSurvivesRestart verifies that a saved token is read
// back by a fresh process using the same database and secret.
func TestClientStorages_TokenSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "panda.db")

	first := newTestStorages(t, dsn, "secret")
	require.NoError(t, first.Credentials.Save(ctx, "token-1"))
	assert.Equal(t, "token-1", first.Credentials.AccessToken())
	require.NoError(t, first.Close())

	second := newTestStorages(t, dsn, "secret")
	token, err := second.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, "token-1", second.Credentials.AccessToken())
}

// TestClientStorages_TokenIsSealedAtRest verifies that the raw row does not
// contain the token.
func TestClientStorages_TokenIsSealedAtRest(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t, filepath.Join(t.TempDir(), "panda.db"), "secret")

	require.NoError(t, storages.Credentials.Save(ctx, "plain-token"))

	raw, err := storages.KeyValueRepository.Get(ctx, AccessTokenKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "plain-token")
}

// TestClientStorages_WrongSecretLogsOut verifies that a token sealed under a
// different secret is dropped on load.
func TestClientStorages_WrongSecretLogsOut(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "panda.db")

	first := newTestStorages(t, dsn, "old-secret")
	require.NoError(t, first.Credentials.Save(ctx, "token-1"))
	require.NoError(t, first.Close())

	second := newTestStorages(t, dsn, "new-secret")
	token, err := second.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, err = second.KeyValueRepository.Get(ctx, AccessTokenKey)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

// TestClientStorages_RevokeRemovesTokenAndUserData verifies that both fixed
// keys are gone after a revoke.
func TestClientStorages_RevokeRemovesTokenAndUserData(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t, filepath.Join(t.TempDir(), "panda.db"), "secret")

	require.NoError(t, storages.Credentials.Save(ctx, "token-1"))
	require.NoError(t, storages.KeyValueRepository.Set(ctx, UserDataKey, []byte(`{"weight":70}`)))

	gen := storages.Credentials.Generation()
	require.NoError(t, storages.Credentials.Revoke(ctx))

	assert.Empty(t, storages.Credentials.AccessToken())
	assert.Greater(t, storages.Credentials.Generation(), gen)

	_, err := storages.KeyValueRepository.Get(ctx, AccessTokenKey)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	_, err = storages.KeyValueRepository.Get(ctx, UserDataKey)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	token, err := storages.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
