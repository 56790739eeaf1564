// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

// Backend routes, relative to the configured base URL (which carries /api).
const (
	registerPath = "/register"
	loginPath    = "/login"
	profilePath  = "/profile"
	foodPath     = "/food"
)

// foodImageField is the multipart field name of the scanned image.
const foodImageField = "image"

type httpServerAdapter struct {
	client *utils.HTTPClient
	creds  CredentialProvider
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and the
// fixed request timeout, and installs the credential middlewares backed by
// creds.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, creds CredentialProvider, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		creds:  creds,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}

	h.client.
		OnBeforeRequest(h.attachCredentials).
		OnAfterResponse(h.revokeOnUnauthorized)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(registerPath)
	if err != nil {
		return models.MessageResponse{}, mapTransportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	if err = decodeJSON(resp, "register", &msg); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// Login implements [ServerAdapter]. A 2xx body without access_token is
// reported as [ErrInvalidResponse].
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(loginPath)
	if err != nil {
		return models.Token{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var token models.Token
	if err = decodeJSON(resp, "login", &token); err != nil {
		return models.Token{}, err
	}

	token.AccessToken = strings.TrimSpace(token.AccessToken)
	if token.AccessToken == "" {
		return models.Token{}, fmt.Errorf("login response: %w: missing access_token", ErrInvalidResponse)
	}

	return token, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if err := h.creds.Revoke(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	resp, err := h.client.R().SetContext(ctx).Get(profilePath)
	if err != nil {
		return models.Profile{}, mapTransportError("get profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = decodeJSON(resp, "get profile", &profile); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, profile models.Profile) (models.MessageResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post(profilePath)
	if err != nil {
		return models.MessageResponse{}, mapTransportError("update profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	var msg models.MessageResponse
	if err = decodeJSON(resp, "update profile", &msg); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// ScanFood implements [ServerAdapter].
func (h *httpServerAdapter) ScanFood(ctx context.Context, image models.FoodImage) (models.FoodScanResult, error) {
	contentType := image.ContentType
	if contentType == "" {
		contentType = utils.ImageContentType(image.FileName)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField(foodImageField, image.FileName, contentType, image.Reader).
		Post(foodPath)
	if err != nil {
		return models.FoodScanResult{}, mapTransportError("scan food request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FoodScanResult{}, err
	}

	var result models.FoodScanResult
	if err = decodeJSON(resp, "scan food", &result); err != nil {
		return models.FoodScanResult{}, err
	}

	return result, nil
}

// GetFoodEntries implements [ServerAdapter].
func (h *httpServerAdapter) GetFoodEntries(ctx context.Context) ([]models.FoodEntry, error) {
	resp, err := h.client.R().SetContext(ctx).Get(foodPath)
	if err != nil {
		return nil, mapTransportError("get food entries request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries models.FoodEntriesResponse
	if err = decodeJSON(resp, "get food entries", &entries); err != nil {
		return nil, err
	}
	if entries.Entries == nil {
		return []models.FoodEntry{}, nil
	}

	return entries.Entries, nil
}
