// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/health-panda/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestValidator() *ProfileValidator {
	return &ProfileValidator{now: func() time.Time { return fixedNow }}
}

func validDraft() models.OnboardingDraft {
	return models.OnboardingDraft{
		Name:          "Alex",
		Gender:        "other",
		BirthDate:     time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		HeightFeet:    5,
		HeightInches:  10,
		Weight:        180,
		WeightUnit:    models.Pounds,
		BodyType:      "3",
		Goal:          "lose",
		TargetWeight:  165,
		ActivityLevel: "moderate",
	}
}

func TestNewProfileValidator(t *testing.T) {
	require.NotNil(t, NewProfileValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("draft value and pointer", func(t *testing.T) {
		d := validDraft()
		require.NoError(t, v.Validate(ctx, d))
		require.NoError(t, v.Validate(ctx, &d))
	})

	t.Run("profile value and pointer", func(t *testing.T) {
		p := validDraft().Profile()
		require.NoError(t, v.Validate(ctx, p))
		require.NoError(t, v.Validate(ctx, &p))
	})

	t.Run("register request", func(t *testing.T) {
		r := models.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "secret1"}
		require.NoError(t, v.Validate(ctx, r))
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validDraft(), "shoe_size"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Onboarding steps
// ---------------------------------------------------------------------------

func TestValidate_DraftFields(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(d *models.OnboardingDraft)
		field  string
		want   error
	}{
		{"name trimmed too short", func(d *models.OnboardingDraft) { d.Name = "  A " }, FieldName, ErrNameTooShort},
		{"name two chars", func(d *models.OnboardingDraft) { d.Name = "Al" }, FieldName, nil},
		{"gender missing", func(d *models.OnboardingDraft) { d.Gender = "" }, FieldGender, ErrGenderRequired},
		{"gender unknown", func(d *models.OnboardingDraft) { d.Gender = "robot" }, FieldGender, ErrGenderRequired},
		{"age 12", func(d *models.OnboardingDraft) { d.BirthDate = time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC) }, FieldBirthDate, ErrAgeOutOfRange},
		{"age 13", func(d *models.OnboardingDraft) { d.BirthDate = time.Date(2013, time.October, 19, 0, 0, 0, 0, time.UTC) }, FieldBirthDate, nil},
		{"turns 13 tomorrow", func(d *models.OnboardingDraft) { d.BirthDate = time.Date(2013, time.October, 20, 0, 0, 0, 0, time.UTC) }, FieldBirthDate, ErrAgeOutOfRange},
		{"age 101", func(d *models.OnboardingDraft) { d.BirthDate = time.Date(1925, time.January, 1, 0, 0, 0, 0, time.UTC) }, FieldBirthDate, ErrAgeOutOfRange},
		{"birth date missing", func(d *models.OnboardingDraft) { d.BirthDate = time.Time{} }, FieldBirthDate, ErrAgeOutOfRange},
		{"height 3'0\"", func(d *models.OnboardingDraft) { d.HeightFeet, d.HeightInches = 3, 0 }, FieldHeight, nil},
		{"height 2'11\"", func(d *models.OnboardingDraft) { d.HeightFeet, d.HeightInches = 2, 11 }, FieldHeight, ErrHeightOutOfRange},
		{"height 7'2\"", func(d *models.OnboardingDraft) { d.HeightFeet, d.HeightInches = 7, 2 }, FieldHeight, nil},
		{"height 7'3\"", func(d *models.OnboardingDraft) { d.HeightFeet, d.HeightInches = 7, 3 }, FieldHeight, ErrHeightOutOfRange},
		{"inches 12", func(d *models.OnboardingDraft) { d.HeightFeet, d.HeightInches = 5, 12 }, FieldHeight, ErrInvalidInches},
		{"weight 29 kg", func(d *models.OnboardingDraft) { d.Weight, d.WeightUnit = 29, models.Kilograms }, FieldWeight, ErrWeightOutOfRange},
		{"weight 250 kg", func(d *models.OnboardingDraft) { d.Weight, d.WeightUnit = 250, models.Kilograms }, FieldWeight, nil},
		{"weight 65 lb", func(d *models.OnboardingDraft) { d.Weight = 65 }, FieldWeight, ErrWeightOutOfRange},
		{"weight 550 lb", func(d *models.OnboardingDraft) { d.Weight = 550 }, FieldWeight, nil},
		{"weight 551 lb", func(d *models.OnboardingDraft) { d.Weight = 551 }, FieldWeight, ErrWeightOutOfRange},
		{"weight unit missing", func(d *models.OnboardingDraft) { d.WeightUnit = "" }, FieldWeight, ErrInvalidWeightUnit},
		{"body type 6", func(d *models.OnboardingDraft) { d.BodyType = "6" }, FieldBodyType, ErrInvalidBodyType},
		{"goal unknown", func(d *models.OnboardingDraft) { d.Goal = "bulk" }, FieldGoal, ErrInvalidGoal},
		{"target 20 is exclusive", func(d *models.OnboardingDraft) { d.TargetWeight = 20 }, FieldTargetWeight, ErrTargetWeightOutOfRange},
		{"target 300 is exclusive", func(d *models.OnboardingDraft) { d.TargetWeight = 300 }, FieldTargetWeight, ErrTargetWeightOutOfRange},
		{"target ignored for maintain", func(d *models.OnboardingDraft) { d.Goal, d.TargetWeight = "maintain", 0 }, FieldTargetWeight, nil},
		{"activity unknown", func(d *models.OnboardingDraft) { d.ActivityLevel = "couch" }, FieldActivityLevel, ErrInvalidActivityLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := v.Validate(ctx, d, tt.field)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_DraftFieldScoping(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	d := validDraft()
	d.ActivityLevel = ""

	// the name step must not complain about a later step
	require.NoError(t, v.Validate(ctx, d, FieldName, FieldGender))
	require.ErrorIs(t, v.Validate(ctx, d), ErrInvalidActivityLevel)
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func TestValidate_Profile(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	t.Run("lightest allowed draft converts to a valid profile", func(t *testing.T) {
		d := validDraft()
		d.Weight = MinWeightLb
		d.HeightFeet, d.HeightInches = 3, 0
		require.NoError(t, v.Validate(ctx, d))
		require.NoError(t, v.Validate(ctx, d.Profile()))
	})

	t.Run("heaviest allowed draft converts to a valid profile", func(t *testing.T) {
		d := validDraft()
		d.Weight = MaxWeightLb
		d.HeightFeet, d.HeightInches = 7, 2
		require.NoError(t, v.Validate(ctx, d.Profile()))
	})

	tests := []struct {
		name   string
		mutate func(p *models.Profile)
		want   error
	}{
		{"zero weight", func(p *models.Profile) { p.Weight = 0 }, ErrWeightOutOfRange},
		{"too heavy", func(p *models.Profile) { p.Weight = 251 }, ErrWeightOutOfRange},
		{"too short", func(p *models.Profile) { p.Height = 90 }, ErrHeightOutOfRange},
		{"too tall", func(p *models.Profile) { p.Height = 219 }, ErrHeightOutOfRange},
		{"body type", func(p *models.Profile) { p.BodyType = "" }, ErrInvalidBodyType},
		{"goal", func(p *models.Profile) { p.FitnessGoal = "" }, ErrInvalidGoal},
		{"activity", func(p *models.Profile) { p.ActivityLevel = "" }, ErrInvalidActivityLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validDraft().Profile()
			tt.mutate(&p)
			assert.ErrorIs(t, v.Validate(ctx, p), tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Sign-up
// ---------------------------------------------------------------------------

func TestValidate_RegisterRequest(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
		want error
	}{
		{"valid", models.RegisterRequest{Name: "Al", Email: "al@example.com", Password: "123456"}, nil},
		{"short name", models.RegisterRequest{Name: "A", Email: "al@example.com", Password: "123456"}, ErrNameTooShort},
		{"email without at", models.RegisterRequest{Name: "Al", Email: "al.example.com", Password: "123456"}, ErrInvalidEmail},
		{"short password", models.RegisterRequest{Name: "Al", Email: "al@example.com", Password: "12345"}, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("single field", func(t *testing.T) {
		req := models.RegisterRequest{Password: "123"}
		require.ErrorIs(t, v.Validate(ctx, req, FieldPassword), ErrPasswordTooShort)
	})
}

func TestLabelOf(t *testing.T) {
	assert.Equal(t, "Average", LabelOf(BodyTypes, "3"))
	assert.Equal(t, "Athlete", LabelOf(ActivityLevels, "athlete"))
	assert.Equal(t, "unknown", LabelOf(Goals, "unknown"))
}
