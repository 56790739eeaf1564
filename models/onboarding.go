// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// WeightUnit is the unit the user typed a weight in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

const (
	kgPerPound   = 0.4536
	cmPerInch    = 2.54
	inchesInFoot = 12
)

// OnboardingDraft is everything the onboarding flow collects before it is
// turned into a [Profile]. Only the profile subset is sent to the backend;
// the rest stays on the screen that asked for it.
type OnboardingDraft struct {
	Name      string
	Gender    string
	BirthDate time.Time

	HeightFeet   int
	HeightInches int

	Weight     float64
	WeightUnit WeightUnit

	BodyType string
	Goal     string

	// TargetWeight is only asked for "lose" and "gain" goals and uses
	// WeightUnit.
	TargetWeight float64

	ActivityLevel string
}

// TotalInches returns the height in inches.
func (d OnboardingDraft) TotalInches() int {
	return d.HeightFeet*inchesInFoot + d.HeightInches
}

// WeightKg returns the weight converted to kilograms.
func (d OnboardingDraft) WeightKg() float64 {
	return toKg(d.Weight, d.WeightUnit)
}

// HeightCm returns the height in whole centimetres.
func (d OnboardingDraft) HeightCm() float64 {
	return math.Round(float64(d.TotalInches()) * cmPerInch)
}

// Age returns the age in full years at now.
func (d OnboardingDraft) Age(now time.Time) int {
	if d.BirthDate.IsZero() {
		return 0
	}
	age := now.Year() - d.BirthDate.Year()
	if now.Month() < d.BirthDate.Month() ||
		(now.Month() == d.BirthDate.Month() && now.Day() < d.BirthDate.Day()) {
		age--
	}
	return age
}

// NeedsTarget reports whether the chosen goal asks for a target weight.
func (d OnboardingDraft) NeedsTarget() bool {
	return d.Goal == "lose" || d.Goal == "gain"
}

// Profile converts the draft into the payload of POST /profile.
// Weight is rounded to one decimal.
func (d OnboardingDraft) Profile() Profile {
	return Profile{
		Weight:        math.Round(d.WeightKg()*10) / 10,
		Height:        d.HeightCm(),
		BodyType:      d.BodyType,
		FitnessGoal:   d.Goal,
		ActivityLevel: d.ActivityLevel,
	}
}

func toKg(v float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return v * kgPerPound
	}
	return v
}
