// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Package service holds the client-side business logic of health-panda: the
// session (token plus cached profile), food logging and the background
// profile refresh. It sits between the UI layers (TUI and CLI) and the
// adapters that talk to the backend.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/health-panda/models"
)

// CredentialStore is the durable token slot the session is built on.
// [store.CredentialStore] implements it.
type CredentialStore interface {
	// Load reads the persisted token into memory. A missing token yields "".
	Load(ctx context.Context) (string, error)

	// Save persists token and makes it current.
	Save(ctx context.Context, token string) error

	// Revoke forgets the token and removes it from persistent storage.
	Revoke(ctx context.Context) error

	// AccessToken returns the current token or "".
	AccessToken() string

	// Generation returns a counter that changes on every Load, Save and
	// Revoke.
	Generation() uint64
}

// ClientSessionService owns the authentication state of the client.
//
// The state is derived, never stored: no token means LoggedOut; a token
// without a profile fetched in the current session means LoggedInNoProfile;
// otherwise LoggedInWithProfile. A 401 on any request revokes the token
// underneath the session, which therefore falls back to LoggedOut on its own.
type ClientSessionService interface {
	// Restore reads the persisted token. When one is found the session is
	// logged in right away and the profile is fetched in the background;
	// call Wait to block until that fetch is over.
	Restore(ctx context.Context) models.AuthState

	// Wait blocks until background profile loads started by Restore finish.
	Wait()

	// Login exchanges credentials for a token, persists it and then loads
	// the profile. A failed profile load does not fail the login.
	// Errors are *UserError values whose text can be shown as-is.
	Login(ctx context.Context, email, password string) error

	// Register creates the account and logs in with the same credentials.
	Register(ctx context.Context, name, email, password string) error

	// Logout clears the token and profile from memory and storage. It never
	// fails.
	Logout(ctx context.Context)

	// RefreshProfile re-fetches the profile. A failed fetch is logged and
	// the previously cached profile is kept; the only error is
	// ErrNotLoggedIn when there is no token. A 401 shows up in State.
	RefreshProfile(ctx context.Context) error

	// UpdateProfile validates and stores profile on the backend, then caches
	// it.
	UpdateProfile(ctx context.Context, profile models.Profile) error

	// State returns the derived authentication state.
	State() models.AuthState

	// Profile returns the cached profile of the current session.
	Profile() (models.Profile, bool)

	// Token returns the current bearer token or "".
	Token() string
}

// ClientFoodService covers food logging and nutrition lookup.
type ClientFoodService interface {
	// Scan uploads the image at imagePath for calorie estimation.
	Scan(ctx context.Context, imagePath string) (models.FoodScanResult, error)

	// Entries lists the logged meals.
	Entries(ctx context.Context) ([]models.FoodEntry, error)

	// Lookup resolves a free-text meal description into nutrition facts.
	Lookup(ctx context.Context, query string) ([]models.NutritionFact, error)
}

// ProfileRefreshJob defines the contract for a background worker that
// periodically calls RefreshProfile while the main screen is open.
type ProfileRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
