// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the sign-up screen. The form is checked locally (all
// fields filled, passwords equal, e-mail and password shape) before the
// account is created. Registration signs the user in, so a successful
// [RegisterResult] ends the sign-in flow just like a login.
type RegisterModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	validator validators.Validator

	form       textForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.ClientSessionService, validator validators.Validator) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		session:   session,
		validator: validator,
		form: newTextForm(
			field{label: "Name", placeholder: "name", limit: 64},
			field{label: "Email", placeholder: "email", limit: 254},
			field{label: "Password", placeholder: "password", limit: 256, secret: true},
			field{label: "Repeat password", placeholder: "repeat password", limit: 256, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.move(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.move(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	body := m.form.view() + formFooter(m.submitting, "Creating account...", "Create account", m.errMsg)
	return renderPage("REGISTER", body, "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	req := models.RegisterRequest{
		Name:     m.form.trimmed(registerName),
		Email:    m.form.trimmed(registerEmail),
		Password: m.form.value(registerPassword),
	}
	repeat := m.form.value(registerRepeat)

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "" || repeat == "":
		m.errMsg = app.MsgFillAllFields
		return nil
	case req.Password != repeat:
		m.errMsg = app.MsgPasswordsDoNotMatch
		return nil
	}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return RegisterResult{
			Email: req.Email,
			Err:   session.Register(ctx, req.Name, req.Email, req.Password),
		}
	}
}
