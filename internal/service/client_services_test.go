// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/health-panda/internal/adapter"
	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/crypto"
	"github.com/MKhiriev/health-panda/internal/fakebackend"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/store"
	"github.com/MKhiriev/health-panda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientStack is a client wired the way cmd/client wires it, talking to a
// fake backend over real HTTP and persisting to a real SQLite file.
type clientStack struct {
	sealer   crypto.Sealer
	storages *store.ClientStorages
	services *ClientServices
}

func newClientStack(t *testing.T, apiURL, dsn string) *clientStack {
	t.Helper()
	ctx := context.Background()

	sealer, err := crypto.NewSealer("integration-secret")
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, sealer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: apiURL, RequestTimeout: 2 * time.Second}, storages.Credentials, logger.Nop())
	require.NoError(t, err)

	return &clientStack{
		sealer:   sealer,
		storages: storages,
		services: NewClientServices(serverAdapter, nil, storages.Credentials, false, logger.Nop()),
	}
}

func (s *clientStack) persistedToken(t *testing.T) string {
	t.Helper()
	blob, err := s.storages.KeyValueRepository.Get(context.Background(), store.AccessTokenKey)
	if err != nil {
		require.ErrorIs(t, err, store.ErrCredentialNotFound)
		return ""
	}
	token, err := s.sealer.Open(blob)
	require.NoError(t, err)
	return string(token)
}

func newFakeBackend(t *testing.T) (*fakebackend.Backend, string) {
	t.Helper()
	backend := fakebackend.New("integration-key", logger.Nop())
	srv := httptest.NewServer(backend.Routes())
	t.Cleanup(srv.Close)
	return backend, srv.URL + "/api"
}

var onboardedProfile = models.Profile{
	Weight:        72.5,
	Height:        170,
	BodyType:      "2",
	FitnessGoal:   "maintain",
	ActivityLevel: "active",
}

func TestClientServices_RegisterOnboardRestart(t *testing.T) {
	ctx := context.Background()
	_, apiURL := newFakeBackend(t)
	dsn := filepath.Join(t.TempDir(), "panda.db")

	first := newClientStack(t, apiURL, dsn)
	session := first.services.SessionService

	require.NoError(t, session.Register(ctx, "Jo", "jo@x.com", "pw123456"))
	assert.Equal(t, models.LoggedInNoProfile, session.State())
	token := session.Token()
	require.NotEmpty(t, token)
	assert.Equal(t, token, first.persistedToken(t))

	require.NoError(t, session.UpdateProfile(ctx, onboardedProfile))
	assert.Equal(t, models.LoggedInWithProfile, session.State())
	require.NoError(t, first.storages.Close())

	// a new process picks up the persisted token
	second := newClientStack(t, apiURL, dsn)
	restored := second.services.SessionService
	assert.True(t, restored.Restore(ctx).LoggedIn())
	restored.Wait()

	assert.Equal(t, models.LoggedInWithProfile, restored.State())
	profile, ok := restored.Profile()
	require.True(t, ok)
	assert.Equal(t, onboardedProfile, profile)
}

func TestClientServices_WrongPassword(t *testing.T) {
	ctx := context.Background()
	_, apiURL := newFakeBackend(t)
	stack := newClientStack(t, apiURL, filepath.Join(t.TempDir(), "panda.db"))
	session := stack.services.SessionService

	require.NoError(t, session.Register(ctx, "Jo", "jo@x.com", "pw123456"))
	session.Logout(ctx)

	err := session.Login(ctx, "jo@x.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, models.LoggedOut, session.State())
	assert.Empty(t, stack.persistedToken(t))
}

func TestClientServices_UnauthorizedOnAnyEndpointLogsOut(t *testing.T) {
	ctx := context.Background()
	backend, apiURL := newFakeBackend(t)
	stack := newClientStack(t, apiURL, filepath.Join(t.TempDir(), "panda.db"))
	session := stack.services.SessionService

	require.NoError(t, session.Register(ctx, "Jo", "jo@x.com", "pw123456"))
	require.NoError(t, session.UpdateProfile(ctx, onboardedProfile))

	backend.RevokeTokens()

	_, err := stack.services.FoodService.Entries(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.Equal(t, models.LoggedOut, session.State())
	assert.Empty(t, stack.persistedToken(t))
	_, err = stack.storages.KeyValueRepository.Get(ctx, store.UserDataKey)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestClientServices_LogoutWithBackendDown(t *testing.T) {
	ctx := context.Background()
	backend := fakebackend.New("integration-key", logger.Nop())
	srv := httptest.NewServer(backend.Routes())
	stack := newClientStack(t, srv.URL+"/api", filepath.Join(t.TempDir(), "panda.db"))
	session := stack.services.SessionService

	require.NoError(t, session.Register(ctx, "Jo", "jo@x.com", "pw123456"))
	require.NoError(t, session.UpdateProfile(ctx, onboardedProfile))
	srv.Close()

	// refresh against an unreachable backend keeps the cached profile
	require.NoError(t, session.RefreshProfile(ctx))
	profile, ok := session.Profile()
	require.True(t, ok)
	assert.Equal(t, onboardedProfile, profile)

	session.Logout(ctx)
	assert.Equal(t, models.LoggedOut, session.State())
	assert.Empty(t, stack.persistedToken(t))
}

func TestClientServices_ProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, apiURL := newFakeBackend(t)
	stack := newClientStack(t, apiURL, filepath.Join(t.TempDir(), "panda.db"))
	session := stack.services.SessionService

	require.NoError(t, session.Register(ctx, "Jo", "jo@x.com", "pw123456"))
	require.NoError(t, session.UpdateProfile(ctx, onboardedProfile))
	require.NoError(t, session.RefreshProfile(ctx))

	profile, ok := session.Profile()
	require.True(t, ok)
	assert.Equal(t, onboardedProfile, profile)
}

func TestClientServices_Timeout(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	sealer, err := crypto.NewSealer("integration-secret")
	require.NoError(t, err)
	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "panda.db")}}, sealer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL + "/api", RequestTimeout: 50 * time.Millisecond}, storages.Credentials, logger.Nop())
	require.NoError(t, err)
	session := NewClientServices(serverAdapter, nil, storages.Credentials, false, logger.Nop()).SessionService

	err = session.Login(ctx, "jo@x.com", "pw123456")
	require.ErrorIs(t, err, adapter.ErrTimeout)
	assert.Equal(t, "Login failed", err.Error())
	assert.Equal(t, models.LoggedOut, session.State())
}
