// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

func (b *Backend) getProfile(w http.ResponseWriter, r *http.Request) {
	email := emailFromRequest(r)

	b.mu.Lock()
	profile, ok := b.profiles[email]
	b.mu.Unlock()

	if !ok {
		_, _ = utils.WriteMessage(w, app.MsgProfileNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (b *Backend) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if profile.Weight <= 0 || profile.Height <= 0 {
		_, _ = utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	b.SetProfile(emailFromRequest(r), profile)

	_, _ = utils.WriteMessage(w, app.MsgProfileUpdated, http.StatusOK)
}
