// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/health-panda/internal/adapter"
	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

// demoFoods are the canned results handed out in demo mode when the backend
// cannot analyse a photo.
var demoFoods = []models.NutritionFact{
	{Name: "Grilled Chicken Breast", Calories: 231, Protein: 43, Carbs: 0, Fat: 5, Serving: "150g"},
	{Name: "Brown Rice", Calories: 216, Protein: 5, Carbs: 45, Fat: 2, Serving: "1 cup"},
	{Name: "Caesar Salad", Calories: 180, Protein: 8, Carbs: 12, Fat: 14, Serving: "1 bowl"},
	{Name: "Avocado Toast", Calories: 320, Protein: 9, Carbs: 28, Fat: 18, Serving: "2 slices"},
	{Name: "Greek Yogurt", Calories: 100, Protein: 10, Carbs: 6, Fat: 3, Serving: "200g"},
}

type clientFoodService struct {
	adapter   adapter.ServerAdapter
	nutrition adapter.NutritionAdapter
	demoMode  bool
	logger    *logger.Logger

	// pick returns an index in [0, n).
	pick func(n int) int
}

// NewClientFoodService creates the food service. nutrition may be nil when
// no lookup credentials are configured. With demoMode set, scan and lookup
// failures are replaced by made-up results marked Demo.
func NewClientFoodService(serverAdapter adapter.ServerAdapter, nutrition adapter.NutritionAdapter, demoMode bool, logger *logger.Logger) ClientFoodService {
	return &clientFoodService{
		adapter:   serverAdapter,
		nutrition: nutrition,
		demoMode:  demoMode,
		logger:    logger,
		pick:      rand.Intn,
	}
}

func (f *clientFoodService) Scan(ctx context.Context, imagePath string) (models.FoodScanResult, error) {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return models.FoodScanResult{}, &UserError{Message: app.MsgScanFailed, Err: ErrEmptyImagePath}
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return models.FoodScanResult{}, &UserError{Message: app.MsgScanFailed, Err: fmt.Errorf("open image: %w", err)}
	}
	defer file.Close()

	result, err := f.adapter.ScanFood(ctx, models.FoodImage{
		FileName:    filepath.Base(imagePath),
		ContentType: utils.ImageContentType(imagePath),
		Reader:      file,
	})
	if err != nil {
		if f.demoMode {
			f.logger.Warn().Err(err).Str("func", "clientFoodService.Scan").Msg("scan failed, using demo result")
			return f.demoScan(), nil
		}
		f.logger.Err(err).Str("func", "clientFoodService.Scan").Msg("scan failed")
		return models.FoodScanResult{}, userError(err, app.MsgScanFailed)
	}

	return result, nil
}

func (f *clientFoodService) Entries(ctx context.Context) ([]models.FoodEntry, error) {
	entries, err := f.adapter.GetFoodEntries(ctx)
	if err != nil {
		f.logger.Err(err).Str("func", "clientFoodService.Entries").Msg("failed to list food entries")
		return nil, userError(err, app.MsgEntriesFailed)
	}
	return entries, nil
}

func (f *clientFoodService) Lookup(ctx context.Context, query string) ([]models.NutritionFact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &UserError{Message: app.MsgLookupFailed, Err: adapter.ErrEmptyQuery}
	}

	if f.nutrition == nil {
		if f.demoMode {
			return []models.NutritionFact{demoEstimate(query)}, nil
		}
		return nil, &UserError{Message: app.MsgNutritionDisabled, Err: ErrNutritionNotConfigured}
	}

	facts, err := f.nutrition.Lookup(ctx, query)
	switch {
	case err != nil && f.demoMode:
		f.logger.Warn().Err(err).Str("func", "clientFoodService.Lookup").Msg("lookup failed, using demo estimate")
		return []models.NutritionFact{demoEstimate(query)}, nil
	case err != nil:
		f.logger.Err(err).Str("func", "clientFoodService.Lookup").Msg("lookup failed")
		return nil, userError(err, app.MsgLookupFailed)
	case len(facts) == 0 && f.demoMode:
		return []models.NutritionFact{demoEstimate(query)}, nil
	}

	return facts, nil
}

func (f *clientFoodService) demoScan() models.FoodScanResult {
	food := demoFoods[f.pick(len(demoFoods))]
	calories := float64(food.Calories)

	return models.FoodScanResult{
		FoodName: food.Name,
		Calories: &calories,
		Demo:     true,
	}
}

// demoEstimate is the generic guess used for any query in demo mode.
func demoEstimate(query string) models.NutritionFact {
	return models.NutritionFact{
		Name:     query,
		Calories: 250,
		Protein:  12,
		Carbs:    30,
		Fat:      8,
		Serving:  "1 serving",
		Demo:     true,
	}
}
