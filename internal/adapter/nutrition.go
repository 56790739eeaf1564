// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/internal/config"
	"github.com/MKhiriev/health-panda/internal/logger"
	"github.com/MKhiriev/health-panda/internal/utils"
	"github.com/MKhiriev/health-panda/models"
)

const (
	naturalNutrientsPath = "/v2/natural/nutrients"
	appIDHeader          = "x-app-id"
	appKeyHeader         = "x-app-key"
)

type nutritionixAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewNutritionAdapter returns a [NutritionAdapter] backed by the Nutritionix
// natural-language endpoint. The client is separate from the backend one, so
// a 401 from the nutrition API never touches the user's session.
func NewNutritionAdapter(cfg config.ClientNutrition, timeout time.Duration, logger *logger.Logger) (NutritionAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid nutrition address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.SetHeaders(map[string]string{
		appIDHeader:  cfg.AppID,
		appKeyHeader: cfg.AppKey,
	})

	return &nutritionixAdapter{client: client, logger: logger}, nil
}

// Lookup implements [NutritionAdapter]. Values are rounded to whole numbers
// and the serving is formatted as "<qty> <unit>".
func (n *nutritionixAdapter) Lookup(ctx context.Context, query string) ([]models.NutritionFact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NutritionQuery{Query: query}).
		Post(naturalNutrientsPath)
	if err != nil {
		return nil, mapTransportError("nutrition lookup request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		n.logger.Warn().Err(err).Str("query", query).Msg("nutrition lookup rejected")
		return nil, err
	}

	var body models.NutritionixResponse
	if err = decodeJSON(resp, "nutrition lookup", &body); err != nil {
		return nil, err
	}

	facts := make([]models.NutritionFact, 0, len(body.Foods))
	for _, food := range body.Foods {
		facts = append(facts, toNutritionFact(food))
	}

	return facts, nil
}

func toNutritionFact(food models.NutritionixFood) models.NutritionFact {
	return models.NutritionFact{
		Name:     food.FoodName,
		Calories: int(math.Round(food.Calories)),
		Protein:  int(math.Round(food.Protein)),
		Carbs:    int(math.Round(food.TotalCarbohydrate)),
		Fat:      int(math.Round(food.TotalFat)),
		Serving:  strconv.FormatFloat(food.ServingQty, 'f', -1, 64) + " " + food.ServingUnit,
	}
}
