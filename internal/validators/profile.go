// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/models"
)

// Field name constants used to restrict validation to a subset of fields.
// The onboarding form passes the fields of its current step.
const (
	FieldName          = "name"
	FieldGender        = "gender"
	FieldBirthDate     = "birth_date"
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldBodyType      = "body_type"
	FieldGoal          = "goal"
	FieldTargetWeight  = "target_weight"
	FieldActivityLevel = "activity_level"

	FieldEmail    = "email"
	FieldPassword = "password"
)

// Onboarding limits.
const (
	MinAge            = 13
	MaxAge            = 100
	MinHeightInches   = 36
	MaxHeightInches   = 86
	MinWeightKg       = 30
	MaxWeightKg       = 250
	MinWeightLb       = 66
	MaxWeightLb       = 550
	MinTargetWeight   = 20
	MaxTargetWeight   = 300
	MinNameLength     = 2
	MinPasswordLength = 6

	// minProfileWeightKg is 66 lb after conversion and rounding to 0.1 kg.
	minProfileWeightKg = 29.9
)

var onboardingFields = []string{
	FieldName, FieldGender, FieldBirthDate, FieldHeight, FieldWeight,
	FieldBodyType, FieldGoal, FieldTargetWeight, FieldActivityLevel,
}

// ProfileValidator implements [Validator] for onboarding drafts, profiles
// and sign-up requests.
type ProfileValidator struct {
	now func() time.Time
}

// NewProfileValidator returns a ProfileValidator using the wall clock for
// age checks.
func NewProfileValidator() Validator {
	return &ProfileValidator{now: time.Now}
}

// Validate dispatches on the type of obj. Supported types (value or pointer):
// models.OnboardingDraft, models.Profile and models.RegisterRequest.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OnboardingDraft:
		return v.validateDraft(value, fields...)
	case *models.OnboardingDraft:
		return v.validateDraft(*value, fields...)

	case models.Profile:
		return v.validateProfile(value)
	case *models.Profile:
		return v.validateProfile(*value)

	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateDraft(d models.OnboardingDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = onboardingFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if len([]rune(strings.TrimSpace(d.Name))) < MinNameLength {
				return ErrNameTooShort
			}
		case FieldGender:
			if !hasOption(Genders, d.Gender) {
				return ErrGenderRequired
			}
		case FieldBirthDate:
			if age := d.Age(v.now()); age < MinAge || age > MaxAge {
				return ErrAgeOutOfRange
			}
		case FieldHeight:
			if d.HeightInches < 0 || d.HeightInches > 11 {
				return ErrInvalidInches
			}
			if total := d.TotalInches(); total < MinHeightInches || total > MaxHeightInches {
				return ErrHeightOutOfRange
			}
		case FieldWeight:
			if err := validateWeight(d.Weight, d.WeightUnit); err != nil {
				return err
			}
		case FieldBodyType:
			if !hasOption(BodyTypes, d.BodyType) {
				return ErrInvalidBodyType
			}
		case FieldGoal:
			if !hasOption(Goals, d.Goal) {
				return ErrInvalidGoal
			}
		case FieldTargetWeight:
			if d.NeedsTarget() && !(d.TargetWeight > MinTargetWeight && d.TargetWeight < MaxTargetWeight) {
				return ErrTargetWeightOutOfRange
			}
		case FieldActivityLevel:
			if !hasOption(ActivityLevels, d.ActivityLevel) {
				return ErrInvalidActivityLevel
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateWeight(weight float64, unit models.WeightUnit) error {
	switch unit {
	case models.Kilograms:
		if weight < MinWeightKg || weight > MaxWeightKg {
			return ErrWeightOutOfRange
		}
	case models.Pounds:
		if weight < MinWeightLb || weight > MaxWeightLb {
			return ErrWeightOutOfRange
		}
	default:
		return ErrInvalidWeightUnit
	}
	return nil
}

// validateProfile checks a profile already converted to metric units.
func (v *ProfileValidator) validateProfile(p models.Profile) error {
	if p.Weight < minProfileWeightKg || p.Weight > MaxWeightKg {
		return ErrWeightOutOfRange
	}

	minCm := models.OnboardingDraft{HeightInches: MinHeightInches}.HeightCm()
	maxCm := models.OnboardingDraft{HeightInches: MaxHeightInches}.HeightCm()
	if p.Height < minCm || p.Height > maxCm {
		return ErrHeightOutOfRange
	}

	if !hasOption(BodyTypes, p.BodyType) {
		return ErrInvalidBodyType
	}
	if !hasOption(Goals, p.FitnessGoal) {
		return ErrInvalidGoal
	}
	if !hasOption(ActivityLevels, p.ActivityLevel) {
		return ErrInvalidActivityLevel
	}

	return nil
}

func (v *ProfileValidator) validateRegisterRequest(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if len([]rune(strings.TrimSpace(r.Name))) < MinNameLength {
				return ErrNameTooShort
			}
		case FieldEmail:
			if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(r.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
