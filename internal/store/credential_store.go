// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/health-panda/internal/crypto"
	"github.com/MKhiriev/health-panda/internal/logger"
)

// Fixed storage keys.
const (
	AccessTokenKey = "access_token"
	UserDataKey    = "user_data"
)

// CredentialStore keeps the access token in memory and mirrors it, sealed,
// into a [KeyValueRepository].
//
// Every change of the token (load, save, revoke) increments a monotonic
// generation. Readers that start work under one generation can check
// [CredentialStore.Generation] afterwards to detect that the session changed
// under them.
type CredentialStore struct {
	repo   KeyValueRepository
	sealer crypto.Sealer
	logger *logger.Logger

	mu         sync.RWMutex
	token      string
	generation uint64
}

// NewCredentialStore returns an empty store. Call Load to read the persisted
// token.
func NewCredentialStore(repo KeyValueRepository, sealer crypto.Sealer, logger *logger.Logger) *CredentialStore {
	return &CredentialStore{
		repo:   repo,
		sealer: sealer,
		logger: logger,
	}
}

// Load reads the persisted token into memory and returns it. A missing token
// yields "". A token that cannot be unsealed (for example after the storage
// secret changed) is removed and treated as missing.
func (s *CredentialStore) Load(ctx context.Context) (string, error) {
	blob, err := s.repo.Get(ctx, AccessTokenKey)
	if errors.Is(err, ErrCredentialNotFound) {
		s.set("")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load access token: %w", err)
	}

	plaintext, err := s.sealer.Open(blob)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "CredentialStore.Load").
			Msg("stored access token cannot be opened, discarding it")
		if delErr := s.repo.Delete(ctx, AccessTokenKey, UserDataKey); delErr != nil {
			s.logger.Err(delErr).Str("func", "CredentialStore.Load").Msg("failed to discard unreadable credentials")
		}
		s.set("")
		return "", nil
	}

	token := string(plaintext)
	s.set(token)
	return token, nil
}

// Save seals and persists token, then makes it current. On error nothing
// changes.
func (s *CredentialStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyKey
	}

	blob, err := s.sealer.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}

	if err = s.repo.Set(ctx, AccessTokenKey, blob); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}

	s.set(token)
	return nil
}

// Revoke forgets the token and removes the persisted token and user data.
// Memory is cleared and the generation advances even when the storage delete
// fails; the delete error is still returned.
func (s *CredentialStore) Revoke(ctx context.Context) error {
	s.set("")

	if err := s.repo.Delete(ctx, AccessTokenKey, UserDataKey); err != nil {
		s.logger.Err(err).Str("func", "CredentialStore.Revoke").Msg("failed to remove stored credentials")
		return fmt.Errorf("revoke credentials: %w", err)
	}

	return nil
}

// AccessToken returns the current token or "".
func (s *CredentialStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Generation returns the current session generation.
func (s *CredentialStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *CredentialStore) set(token string) {
	s.mu.Lock()
	s.token = token
	s.generation++
	s.mu.Unlock()
}
