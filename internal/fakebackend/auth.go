// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
	"golang.org/x/crypto/bcrypt"
)

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" {
		_, _ = utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		_, _ = utils.WriteMessage(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	b.mu.Lock()
	_, exists := b.users[email]
	if !exists {
		b.users[email] = user{name: req.Name, passwordHash: hash}
	}
	b.mu.Unlock()

	if exists {
		log.Info().Str("email", email).Msg("login already exists")
		_, _ = utils.WriteMessage(w, app.MsgUserAlreadyExists, http.StatusConflict)
		return
	}

	_, _ = utils.WriteMessage(w, app.MsgRegistered, http.StatusCreated)
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(creds.Email))

	b.mu.Lock()
	u, ok := b.users[email]
	signKey, ttl := b.signKey, b.tokenTTL
	b.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(creds.Password)) != nil {
		log.Info().Str("email", email).Msg("no user was found/wrong password")
		_, _ = utils.WriteMessage(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, email, ttl, signKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		_, _ = utils.WriteMessage(w, app.MsgLoginFailed, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.Token{AccessToken: token}, http.StatusOK)
}
