// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/health-panda/internal/app"
	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the sign-in screen. A successful [LoginResult] ends the
// sign-in flow in [RootModel]; a failed one keeps the e-mail and clears the
// password.
type LoginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       textForm
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, session service.ClientSessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newTextForm(
			field{label: "Email", placeholder: "email", limit: 254},
			field{label: "Password", placeholder: "password", limit: 256, secret: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			m.form.set(loginPassword, "")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
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

func (m *LoginModel) View() string {
	body := m.form.view() + formFooter(m.submitting, "Signing in...", "Sign in", m.errMsg)
	return renderPage("LOG IN", body, "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email, password := m.form.trimmed(loginEmail), m.form.value(loginPassword)
	if email == "" || password == "" {
		m.errMsg = app.MsgFillAllFields
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return LoginResult{Email: email, Err: session.Login(ctx, email, password)}
	}
}
