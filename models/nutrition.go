// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NutritionFact is a single food item resolved by the nutrition lookup.
// Macros are in grams and rounded to whole numbers.
type NutritionFact struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Serving  string `json:"serving"`

	// Demo marks an estimate made up locally in demo mode.
	Demo bool `json:"-"`
}

// NutritionQuery is the request body of the natural-language lookup.
type NutritionQuery struct {
	Query string `json:"query"`
}

// NutritionixFood is one item of the lookup response as sent upstream.
type NutritionixFood struct {
	FoodName          string  `json:"food_name"`
	ServingQty        float64 `json:"serving_qty"`
	ServingUnit       string  `json:"serving_unit"`
	Calories          float64 `json:"nf_calories"`
	Protein           float64 `json:"nf_protein"`
	TotalCarbohydrate float64 `json:"nf_total_carbohydrate"`
	TotalFat          float64 `json:"nf_total_fat"`
}

// NutritionixResponse is the envelope of the lookup response.
type NutritionixResponse struct {
	Foods []NutritionixFood `json:"foods"`
}
