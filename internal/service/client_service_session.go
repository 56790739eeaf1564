// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/health-panda/internal/adapter"
	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
)

type clientSessionService struct {
	adapter   adapter.ServerAdapter
	creds     CredentialStore
	validator validators.Validator
	logger    *logger.Logger

	mu sync.Mutex
	// profile is only meaningful while profileGen equals the credential
	// generation it was fetched under.
	profile    *models.Profile
	profileGen uint64

	wg sync.WaitGroup
}

// NewClientSessionService creates the session. It starts logged out; call
// Restore to pick up a persisted token.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, creds CredentialStore, validator validators.Validator, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:   serverAdapter,
		creds:     creds,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) models.AuthState {
	token, err := s.creds.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Restore").Msg("failed to read stored credentials")
		return models.LoggedOut
	}
	if token == "" {
		return models.LoggedOut
	}

	gen := s.creds.Generation()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if loadErr := s.loadProfile(ctx, gen); loadErr != nil {
			s.logger.Info().Err(loadErr).Str("func", "clientSessionService.Restore").Msg("profile not loaded")
		}
	}()

	return s.State()
}

func (s *clientSessionService) Wait() {
	s.wg.Wait()
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	return s.login(ctx, email, password, app.MsgLoginFailed)
}

// login signs in and loads the profile. Failures without a backend message
// are reported with fallback.
func (s *clientSessionService) login(ctx context.Context, email, password, fallback string) error {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return &UserError{Message: app.MsgFillAllFields, Err: ErrEmptyCredentials}
	}

	token, err := s.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("login failed")
		s.dropSession(ctx)
		return userError(err, fallback)
	}

	if err = s.creds.Save(ctx, token.AccessToken); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("failed to persist access token")
		s.dropSession(ctx)
		return &UserError{Message: fallback, Err: err}
	}

	if err = s.loadProfile(ctx, s.creds.Generation()); err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Login").Msg("profile not yet created")
	}

	return nil
}

func (s *clientSessionService) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return &UserError{Message: app.MsgFillAllFields, Err: ErrEmptyCredentials}
	}

	_, err := s.adapter.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Msg("registration failed")
		return userError(err, app.MsgRegistrationFailed)
	}

	// a failure of the follow-up login still reads as a failed registration
	return s.login(ctx, email, password, app.MsgRegistrationFailed)
}

func (s *clientSessionService) Logout(ctx context.Context) {
	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Logout").Msg("logout failed")
	}
	s.dropSession(ctx)
}

func (s *clientSessionService) RefreshProfile(ctx context.Context) error {
	if s.creds.AccessToken() == "" {
		return ErrNotLoggedIn
	}

	// the cached profile stays in place; a 401 has already ended the session
	if err := s.loadProfile(ctx, s.creds.Generation()); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.RefreshProfile").Msg("failed to refresh profile")
	}
	return nil
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, profile models.Profile) error {
	if err := s.validator.Validate(ctx, profile); err != nil {
		return &UserError{Message: err.Error(), Err: err}
	}
	if s.creds.AccessToken() == "" {
		return &UserError{Message: app.MsgNotLoggedIn, Err: ErrNotLoggedIn}
	}

	gen := s.creds.Generation()
	if _, err := s.adapter.UpdateProfile(ctx, profile); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Msg("failed to update profile")
		return userError(err, app.MsgProfileUpdateFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.creds.Generation() {
		return &UserError{Message: app.MsgNotLoggedIn, Err: ErrStaleSession}
	}
	s.profile = &profile
	s.profileGen = gen

	return nil
}

func (s *clientSessionService) State() models.AuthState {
	if s.creds.AccessToken() == "" {
		return models.LoggedOut
	}
	if _, ok := s.Profile(); ok {
		return models.LoggedInWithProfile
	}
	return models.LoggedInNoProfile
}

func (s *clientSessionService) Profile() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil || s.profileGen != s.creds.Generation() || s.creds.AccessToken() == "" {
		return models.Profile{}, false
	}
	return *s.profile, true
}

func (s *clientSessionService) Token() string {
	return s.creds.AccessToken()
}

// loadProfile fetches the profile and caches it if the session is still the
// one identified by gen. On error the cache is left untouched.
func (s *clientSessionService) loadProfile(ctx context.Context, gen uint64) error {
	profile, err := s.adapter.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.creds.Generation() {
		s.logger.Debug().Str("func", "clientSessionService.loadProfile").Msg("discarding profile of a previous session")
		return ErrStaleSession
	}
	s.profile = &profile
	s.profileGen = gen

	return nil
}

// dropSession forgets the token and the cached profile. Storage errors are
// logged; the in-memory state is cleared regardless.
func (s *clientSessionService) dropSession(ctx context.Context) {
	if err := s.creds.Revoke(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.dropSession").Msg("failed to remove stored credentials")
	}

	s.mu.Lock()
	s.profile = nil
	s.profileGen = 0
	s.mu.Unlock()
}
