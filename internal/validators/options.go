// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Option is one choice of an enumerated profile field.
type Option struct {
	Key   string
	Label string
}

// Genders lists the accepted gender keys.
var Genders = []Option{
	{Key: "male", Label: "Male"},
	{Key: "female", Label: "Female"},
	{Key: "other", Label: "Other"},
}

// BodyTypes lists the body type keys, leanest first.
var BodyTypes = []Option{
	{Key: "1", Label: "Shredded"},
	{Key: "2", Label: "Fit"},
	{Key: "3", Label: "Average"},
	{Key: "4", Label: "Overweight"},
	{Key: "5", Label: "Obese"},
}

// Goals lists the fitness goal keys.
var Goals = []Option{
	{Key: "lose", Label: "Lose weight"},
	{Key: "maintain", Label: "Maintain"},
	{Key: "gain", Label: "Gain muscle"},
	{Key: "health", Label: "Improve health"},
	{Key: "sport", Label: "Sport performance"},
}

// ActivityLevels lists the activity level keys, least active first.
var ActivityLevels = []Option{
	{Key: "sedentary", Label: "Sedentary"},
	{Key: "light", Label: "Lightly active"},
	{Key: "moderate", Label: "Moderately active"},
	{Key: "active", Label: "Very active"},
	{Key: "athlete", Label: "Athlete"},
}

// LabelOf returns the label of key in options, or key itself.
func LabelOf(options []Option, key string) string {
	for _, o := range options {
		if o.Key == key {
			return o.Label
		}
	}
	return key
}

func hasOption(options []Option, key string) bool {
	for _, o := range options {
		if o.Key == key {
			return true
		}
	}
	return false
}
