// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the user's fitness profile as stored by the backend
// (GET/POST /profile). Weight is in kilograms and height in centimetres.
//
// The client keeps a read-through copy in memory only; a missing profile
// means onboarding is not finished yet.
type Profile struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BodyType      string  `json:"body_type"`
	FitnessGoal   string  `json:"fitness_goal"`
	ActivityLevel string  `json:"activity_level"`
}

// BMI returns the body-mass index derived from Weight and Height, or 0 when
// either value is missing.
func (p Profile) BMI() float64 {
	if p.Weight <= 0 || p.Height <= 0 {
		return 0
	}
	m := p.Height / 100
	return p.Weight / (m * m)
}
