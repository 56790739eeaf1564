// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const birthDateLayout = "2006-01-02"

// onboardingStep is one question of the wizard. A step either shows text
// inputs (prompts) or a list of options to pick from.
type onboardingStep struct {
	title   string
	prompts []string
	// defaults pre-fill the inputs the first time the step opens.
	defaults []string
	options  []validators.Option
	// inWeightUnit appends the chosen weight unit to the title.
	inWeightUnit bool
	// fields are checked by the validator before the wizard moves on.
	fields []string
	// apply copies the raw answers into the draft.
	apply func(d *models.OnboardingDraft, values []string, choice string) error
	// skip hides the step for drafts it does not apply to.
	skip func(d models.OnboardingDraft) bool
}

func onboardingSteps() []onboardingStep {
	return []onboardingStep{
		{
			title:   "What should we call you?",
			prompts: []string{"name"},
			fields:  []string{validators.FieldName},
			apply: func(d *models.OnboardingDraft, values []string, _ string) error {
				d.Name = strings.TrimSpace(values[0])
				return nil
			},
		},
		{
			title:   "Gender",
			options: validators.Genders,
			fields:  []string{validators.FieldGender},
			apply: func(d *models.OnboardingDraft, _ []string, choice string) error {
				d.Gender = choice
				return nil
			},
		},
		{
			title:   "Birth date",
			prompts: []string{"YYYY-MM-DD"},
			fields:  []string{validators.FieldBirthDate},
			apply: func(d *models.OnboardingDraft, values []string, _ string) error {
				birthDate, err := time.Parse(birthDateLayout, strings.TrimSpace(values[0]))
				if err != nil {
					return errBirthDateFormat
				}
				d.BirthDate = birthDate
				return nil
			},
		},
		{
			title:   "Height",
			prompts: []string{"feet", "inches"},
			fields:  []string{validators.FieldHeight},
			apply: func(d *models.OnboardingDraft, values []string, _ string) error {
				feet, err := strconv.Atoi(strings.TrimSpace(values[0]))
				if err != nil {
					return errNotANumber
				}
				inches, err := strconv.Atoi(strings.TrimSpace(values[1]))
				if err != nil {
					return errNotANumber
				}
				d.HeightFeet, d.HeightInches = feet, inches
				return nil
			},
		},
		{
			title:    "Weight",
			prompts:  []string{"weight", "unit (kg or lb)"},
			defaults: []string{"", string(models.Pounds)},
			fields:   []string{validators.FieldWeight},
			apply: func(d *models.OnboardingDraft, values []string, _ string) error {
				weight, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64)
				if err != nil {
					return errNotANumber
				}
				d.Weight = weight
				d.WeightUnit = models.WeightUnit(strings.ToLower(strings.TrimSpace(values[1])))
				return nil
			},
		},
		{
			title:   "Body type",
			options: validators.BodyTypes,
			fields:  []string{validators.FieldBodyType},
			apply: func(d *models.OnboardingDraft, _ []string, choice string) error {
				d.BodyType = choice
				return nil
			},
		},
		{
			title:   "Goal",
			options: validators.Goals,
			fields:  []string{validators.FieldGoal},
			apply: func(d *models.OnboardingDraft, _ []string, choice string) error {
				d.Goal = choice
				return nil
			},
		},
		{
			title:        "Target weight",
			prompts:      []string{"target weight"},
			inWeightUnit: true,
			fields:       []string{validators.FieldTargetWeight},
			apply: func(d *models.OnboardingDraft, values []string, _ string) error {
				target, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64)
				if err != nil {
					return errNotANumber
				}
				d.TargetWeight = target
				return nil
			},
			skip: func(d models.OnboardingDraft) bool { return !d.NeedsTarget() },
		},
		{
			title:   "Activity level",
			options: validators.ActivityLevels,
			fields:  []string{validators.FieldActivityLevel},
			apply: func(d *models.OnboardingDraft, _ []string, choice string) error {
				d.ActivityLevel = choice
				return nil
			},
		},
	}
}

// OnboardingModel is the profile wizard shown to a signed-in user without a
// profile. Every step is validated before the next one opens; the last step
// submits the profile through the session service and produces
// [ProfileSaved].
type OnboardingModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	validator validators.Validator

	steps   []onboardingStep
	step    int
	draft   models.OnboardingDraft
	answers [][]string
	cursors []int

	form       textForm
	submitting bool
	errMsg     string
}

func NewOnboardingModel(ctx context.Context, session service.ClientSessionService, validator validators.Validator) *OnboardingModel {
	steps := onboardingSteps()
	m := &OnboardingModel{
		ctx:       ctx,
		session:   session,
		validator: validator,
		steps:     steps,
		answers:   make([][]string, len(steps)),
		cursors:   make([]int, len(steps)),
	}
	for i, s := range steps {
		m.answers[i] = make([]string, len(s.prompts))
		copy(m.answers[i], s.defaults)
	}
	m.enterStep(0)

	return m
}

func (m *OnboardingModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ProfileSaved); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.submitting {
		return m, nil
	}

	current := m.steps[m.step]
	switch {
	case key.Matches(keyMsg, keys.esc):
		if prev := m.prevStep(); prev >= 0 {
			m.saveAnswers()
			m.errMsg = ""
			m.enterStep(prev)
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m, m.advance()
	case len(current.options) > 0 && key.Matches(keyMsg, keys.up):
		if m.cursors[m.step] > 0 {
			m.cursors[m.step]--
		}
		return m, nil
	case len(current.options) > 0 && key.Matches(keyMsg, keys.down):
		if m.cursors[m.step] < len(current.options)-1 {
			m.cursors[m.step]++
		}
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.form.move(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.form.move(-1)
		return m, nil
	}

	return m, m.form.update(msg)
}

func (m *OnboardingModel) View() string {
	current := m.steps[m.step]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Step %d of %d: %s", m.step+1, len(m.steps), current.title))
	if current.inWeightUnit {
		b.WriteString(" (" + string(m.draft.WeightUnit) + ")")
	}
	b.WriteString("\n\n")

	if len(current.options) > 0 {
		for i, o := range current.options {
			cursor := " "
			if i == m.cursors[m.step] {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, o.Label))
		}
	} else {
		b.WriteString(m.form.view())
	}
	b.WriteString(formFooter(m.submitting, "Saving profile...", "", m.errMsg))

	hotKeys := "esc: previous step │ enter: next"
	if len(current.options) > 0 {
		hotKeys = "esc: previous step │ ↑/↓: choose │ enter: next"
	}
	return renderPage("YOUR PROFILE", b.String(), hotKeys)
}

// Draft returns the answers collected so far.
func (m *OnboardingModel) Draft() models.OnboardingDraft {
	return m.draft
}

// advance applies and validates the current step, then opens the next one
// or submits the profile after the last step.
func (m *OnboardingModel) advance() tea.Cmd {
	current := m.steps[m.step]
	m.saveAnswers()

	choice := ""
	if len(current.options) > 0 {
		choice = current.options[m.cursors[m.step]].Key
	}
	if err := current.apply(&m.draft, m.answers[m.step], choice); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if err := m.validator.Validate(m.ctx, m.draft, current.fields...); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""

	if next := m.nextStep(); next < len(m.steps) {
		m.enterStep(next)
		return textinput.Blink
	}

	if err := m.validator.Validate(m.ctx, m.draft); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.submitting = true
	ctx := m.ctx
	session := m.session
	profile := m.draft.Profile()
	return func() tea.Msg {
		return ProfileSaved{Err: session.UpdateProfile(ctx, profile)}
	}
}

func (m *OnboardingModel) nextStep() int {
	for i := m.step + 1; i < len(m.steps); i++ {
		if skip := m.steps[i].skip; skip == nil || !skip(m.draft) {
			return i
		}
	}
	return len(m.steps)
}

func (m *OnboardingModel) prevStep() int {
	for i := m.step - 1; i >= 0; i-- {
		if skip := m.steps[i].skip; skip == nil || !skip(m.draft) {
			return i
		}
	}
	return -1
}

// enterStep opens step i with the answers given to it so far.
func (m *OnboardingModel) enterStep(i int) {
	m.step = i

	fields := make([]field, len(m.steps[i].prompts))
	for j, prompt := range m.steps[i].prompts {
		fields[j] = field{label: prompt, placeholder: prompt, limit: 64, value: m.answers[i][j]}
	}
	m.form = newTextForm(fields...)
}

func (m *OnboardingModel) saveAnswers() {
	copy(m.answers[m.step], m.form.values())
}
