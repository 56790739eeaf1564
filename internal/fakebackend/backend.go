// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"sync"
	"time"

	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

const (
	tokenIssuer      = "health-panda-fake-backend"
	defaultTokenTTL  = time.Hour
	defaultSignKey   = "fake-backend-sign-key"
	maxUploadSize    = 10 << 20
	imageFormField   = "image"
	uploadPathPrefix = "uploads/"
)

type user struct {
	name         string
	passwordHash []byte
}

// Backend is the in-memory backend. The zero value is not usable; create one
// with New.
type Backend struct {
	logger *logger.Logger
	ids    utils.UUIDGenerator

	mu          sync.Mutex
	signKey     string
	tokenTTL    time.Duration
	users       map[string]user
	profiles    map[string]models.Profile
	entries     map[string][]models.FoodEntry
	nextEntryID int64
}

// New creates an empty backend signing tokens with signKey. An empty signKey
// uses a fixed development key.
func New(signKey string, logger *logger.Logger) *Backend {
	if signKey == "" {
		signKey = defaultSignKey
	}

	return &Backend{
		logger:   logger,
		signKey:  signKey,
		tokenTTL: defaultTokenTTL,
		users:    make(map[string]user),
		profiles: make(map[string]models.Profile),
		entries:  make(map[string][]models.FoodEntry),
	}
}

// RevokeTokens rotates the signing key so every token issued so far is
// rejected with 401.
func (b *Backend) RevokeTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signKey = b.signKey + "+"
}

// SetProfile stores p for email directly, bypassing the API.
func (b *Backend) SetProfile(email string, p models.Profile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles[email] = p
}

func (b *Backend) currentSignKey() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.signKey
}
