// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakebackend

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

// fakeConfidence is reported for every estimate.
const fakeConfidence = 0.5

func (b *Backend) scanFood(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart body")
		_, _ = utils.WriteMessage(w, app.MsgNoImageProvided, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		_, _ = utils.WriteMessage(w, app.MsgNoImageProvided, http.StatusBadRequest)
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil || size == 0 {
		_, _ = utils.WriteMessage(w, app.MsgNoImageProvided, http.StatusBadRequest)
		return
	}

	name, calories := estimate(header.Filename, size)
	confidence := fakeConfidence

	b.mu.Lock()
	b.nextEntryID++
	entry := models.FoodEntry{
		EntryID:    b.nextEntryID,
		FoodName:   name,
		Calories:   &calories,
		Confidence: &confidence,
		ImagePath:  uploadPathPrefix + b.ids.Generate() + strings.ToLower(filepath.Ext(header.Filename)),
		CreatedOn:  time.Now().UTC().Format(time.RFC3339),
	}
	email := emailFromRequest(r)
	b.entries[email] = append(b.entries[email], entry)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.FoodScanResult{
		EntryID:    entry.EntryID,
		FoodName:   entry.FoodName,
		Calories:   entry.Calories,
		Confidence: entry.Confidence,
	}, http.StatusCreated)
}

func (b *Backend) listFood(w http.ResponseWriter, r *http.Request) {
	email := emailFromRequest(r)

	b.mu.Lock()
	entries := append([]models.FoodEntry{}, b.entries[email]...)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.FoodEntriesResponse{Entries: entries}, http.StatusOK)
}

// estimate names the meal after the uploaded file and derives a stable
// calorie count from the image size.
func estimate(fileName string, size int64) (string, float64) {
	name := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	name = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if name == "" || name == "." {
		name = "Unknown meal"
	}

	return name, float64(100 + size%400)
}
