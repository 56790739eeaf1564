// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// FoodImage is an image to upload for calorie estimation.
type FoodImage struct {
	// FileName is the base name sent in the multipart part.
	FileName string
	// ContentType is the MIME type of the part (e.g. "image/jpeg").
	ContentType string
	// Reader yields the image bytes.
	Reader io.Reader
}

// FoodScanResult is the response of POST /food. Calories and Confidence are
// nullable: the backend may fail to estimate them.
type FoodScanResult struct {
	EntryID    int64    `json:"entry_id"`
	FoodName   string   `json:"food_name"`
	Calories   *float64 `json:"calories"`
	Confidence *float64 `json:"confidence"`

	// Demo is set when the result is a canned placeholder produced in demo
	// mode instead of a real backend estimate.
	Demo bool `json:"-"`
}

// FoodEntry is one logged meal as returned by GET /food.
type FoodEntry struct {
	EntryID    int64    `json:"entry_id"`
	FoodName   string   `json:"food_name"`
	Calories   *float64 `json:"calories"`
	Confidence *float64 `json:"confidence"`
	ImagePath  string   `json:"image_path"`
	CreatedOn  string   `json:"created_on"`
}

// FoodEntriesResponse is the envelope of GET /food.
type FoodEntriesResponse struct {
	Entries []FoodEntry `json:"entries"`
}

// TotalCalories sums the known calories of entries; entries without an
// estimate are skipped.
func TotalCalories(entries []FoodEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.Calories != nil {
			total += *e.Calories
		}
	}
	return total
}
