// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Health Panda backend and the third-party nutrition lookup.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The HTTP implementation ([NewHTTPServerAdapter])
// runs every request through two resty middlewares: one attaches the bearer
// token supplied by a [CredentialProvider], the other revokes the stored
// credentials when the backend answers 401.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401), and
// [errors.As] with [*ResponseError] to read the backend's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/health-panda/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the Health Panda backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Register creates an account (POST /register). It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)

	// Login exchanges credentials for an access token (POST /login). The
	// token is returned, not stored; persisting it is the caller's job.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Logout is client-local: the backend has no logout endpoint, so it only
	// revokes the stored credentials.
	Logout(ctx context.Context) error

	// GetProfile fetches the fitness profile (GET /profile).
	GetProfile(ctx context.Context) (models.Profile, error)

	// UpdateProfile stores the fitness profile (POST /profile).
	UpdateProfile(ctx context.Context, profile models.Profile) (models.MessageResponse, error)

	// ScanFood uploads a meal photo for calorie estimation (POST /food,
	// multipart field "image").
	ScanFood(ctx context.Context, image models.FoodImage) (models.FoodScanResult, error)

	// GetFoodEntries lists logged meals (GET /food). A response without an
	// entries field yields an empty slice.
	GetFoodEntries(ctx context.Context) ([]models.FoodEntry, error)
}

// NutritionAdapter resolves a natural-language meal description
// ("2 eggs and toast") into per-item nutrition facts.
type NutritionAdapter interface {
	Lookup(ctx context.Context, query string) ([]models.NutritionFact, error)
}

// CredentialProvider supplies the bearer token for outgoing requests and is
// told to forget it when the backend rejects it.
type CredentialProvider interface {
	// AccessToken returns the current token or "" when logged out.
	AccessToken() string
	// Revoke clears the token from memory and persistent storage.
	Revoke(ctx context.Context) error
}
