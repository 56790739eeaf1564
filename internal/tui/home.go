// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/health-panda/internal/service"
	"github.com/MKhiriev/health-panda/internal/validators"
	"github.com/MKhiriev/health-panda/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type homeMode int

const (
	homeBrowse homeMode = iota
	homeScanInput
	homeLookupInput
	homeConfirmLogout
)

const statusTimeout = 3 * time.Second

// MsgSessionExpired is shown on the menu after the backend rejected the token.
const MsgSessionExpired = "Your session has expired, please log in again"

var copyToClipboard = clipboard.WriteAll

// HomeModel is the main screen of a signed-in user with a profile. It shows
// the profile, the food log with its calorie total and the last nutrition
// lookup. Food scans and lookups run as async commands.
//
// The program ends when the user quits, logs out, or when the session is
// found logged out after a request (the backend answered 401).
type HomeModel struct {
	ctx     context.Context
	session service.ClientSessionService
	food    service.ClientFoodService

	profile    models.Profile
	hasProfile bool

	entries    []models.FoodEntry
	loading    bool
	lastScan   *models.FoodScanResult
	lastQuery  string
	facts      []models.NutritionFact
	mode       homeMode
	input      textinput.Model
	busy       bool
	status     string
	showError  bool
	errOverlay errorOverlayModel
	confirm    confirmModel

	logout  bool
	expired bool
}

func NewHomeModel(ctx context.Context, session service.ClientSessionService, food service.ClientFoodService) *HomeModel {
	input := textinput.New()
	input.Width = 50

	m := &HomeModel{
		ctx:     ctx,
		session: session,
		food:    food,
		input:   input,
		loading: true,
		confirm: confirmModel{message: "Log out?"},
	}
	m.profile, m.hasProfile = session.Profile()

	return m
}

func (m *HomeModel) Init() tea.Cmd {
	return m.cmdLoadEntries()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.entries = msg.entries
		return m, nil

	case profileRefreshedMsg:
		m.busy = false
		// a failed refresh keeps the cached profile and is only logged; the
		// screen reacts when it ended the session
		if m.session.State() == models.LoggedOut {
			return m.sessionExpired()
		}
		m.profile, m.hasProfile = m.session.Profile()
		return m, m.flash("Profile refreshed")

	case scanDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		result := msg.result
		m.lastScan = &result
		m.loading = true
		return m, tea.Batch(m.cmdLoadEntries(), m.flash(describeScan(result)))

	case lookupDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.lastQuery = msg.query
		m.facts = msg.facts
		return m, nil

	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	switch m.mode {
	case homeConfirmLogout:
		switch {
		case key.Matches(msg, keys.yes):
			m.mode = homeBrowse
			return m, m.cmdLogout()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.mode = homeBrowse
		}
		return m, nil

	case homeScanInput, homeLookupInput:
		switch {
		case key.Matches(msg, keys.esc):
			m.closeInput()
			return m, nil
		case key.Matches(msg, keys.enter):
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			mode := m.mode
			m.closeInput()
			m.busy = true
			if mode == homeScanInput {
				return m, m.cmdScan(value)
			}
			return m, m.cmdLookup(value)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.mode = homeConfirmLogout
	case key.Matches(msg, keys.refresh):
		m.busy = true
		m.loading = true
		return m, tea.Batch(m.cmdRefreshProfile(), m.cmdLoadEntries())
	case key.Matches(msg, keys.scan):
		return m, m.openInput(homeScanInput, "path to a food photo")
	case key.Matches(msg, keys.lookup):
		return m, m.openInput(homeLookupInput, "e.g. 2 eggs and toast")
	case key.Matches(msg, keys.copy):
		return m.copyEntries()
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(renderProfile(m.profile, m.hasProfile))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Food log"))
	b.WriteString("\n")
	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("No meals logged yet. Press s to scan a photo.\n")
	default:
		b.WriteString(renderEntries(m.entries))
	}

	if m.lastScan != nil {
		b.WriteString("\nLast scan: ")
		b.WriteString(describeScan(*m.lastScan))
		b.WriteString("\n")
	}

	if m.lastQuery != "" {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Nutrition: " + m.lastQuery))
		b.WriteString("\n")
		b.WriteString(renderFacts(m.facts))
	}

	switch m.mode {
	case homeScanInput:
		b.WriteString("\nImage path: [" + m.input.View() + "]\n")
	case homeLookupInput:
		b.WriteString("\nLook up: [" + m.input.View() + "]\n")
	}

	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.mode == homeConfirmLogout {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.showError {
		b.WriteString("\n")
		b.WriteString(m.errOverlay.View())
		b.WriteString("\n")
	}

	hotKeys := "s: scan │ f: lookup │ r: refresh │ c: copy log │ o: log out │ q: quit"
	if m.mode == homeScanInput || m.mode == homeLookupInput {
		hotKeys = "enter: submit │ esc: cancel"
	}
	return appStyle.Render(renderPage("HEALTH PANDA", b.String(), hotKeys))
}

// Logout reports whether the session ended while the screen was open.
func (m *HomeModel) Logout() bool {
	return m.logout
}

// Expired reports whether the session ended because the backend rejected
// the token rather than because the user logged out.
func (m *HomeModel) Expired() bool {
	return m.expired
}

// fail shows err unless the request revealed that the session is gone, in
// which case the screen closes.
func (m *HomeModel) fail(err error) (tea.Model, tea.Cmd) {
	if m.session.State() == models.LoggedOut {
		return m.sessionExpired()
	}
	m.showError = true
	m.errOverlay.show("Request failed", humanizeError(err))
	return m, nil
}

// sessionExpired leaves the home screen after a 401 revoked the token.
func (m *HomeModel) sessionExpired() (tea.Model, tea.Cmd) {
	m.logout = true
	m.expired = true
	return m, tea.Quit
}

func (m *HomeModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *HomeModel) openInput(mode homeMode, placeholder string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *HomeModel) closeInput() {
	m.mode = homeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m *HomeModel) copyEntries() (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, m.flash("Nothing to copy")
	}
	if err := copyToClipboard(entriesText(m.entries)); err != nil {
		m.showError = true
		m.errOverlay.show("Copy failed", err.Error())
		return m, nil
	}
	return m, m.flash(fmt.Sprintf("Copied %d entries", len(m.entries)))
}

func (m *HomeModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	food := m.food
	return func() tea.Msg {
		entries, err := food.Entries(ctx)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m *HomeModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return profileRefreshedMsg{err: session.RefreshProfile(ctx)}
	}
}

func (m *HomeModel) cmdScan(path string) tea.Cmd {
	ctx := m.ctx
	food := m.food
	return func() tea.Msg {
		result, err := food.Scan(ctx, path)
		return scanDoneMsg{result: result, err: err}
	}
}

func (m *HomeModel) cmdLookup(query string) tea.Cmd {
	ctx := m.ctx
	food := m.food
	return func() tea.Msg {
		facts, err := food.Lookup(ctx, query)
		return lookupDoneMsg{query: query, facts: facts, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		session.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func renderProfile(p models.Profile, ok bool) string {
	if !ok {
		return "Profile not loaded. Press r to retry."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Weight   │ %.1f kg\n", p.Weight))
	b.WriteString(fmt.Sprintf("Height   │ %.0f cm\n", p.Height))
	if bmi := p.BMI(); bmi > 0 {
		b.WriteString(fmt.Sprintf("BMI      │ %.1f\n", bmi))
	}
	b.WriteString("Body     │ " + validators.LabelOf(validators.BodyTypes, p.BodyType) + "\n")
	b.WriteString("Goal     │ " + validators.LabelOf(validators.Goals, p.FitnessGoal) + "\n")
	b.WriteString("Activity │ " + validators.LabelOf(validators.ActivityLevels, p.ActivityLevel))
	return b.String()
}

func renderEntries(entries []models.FoodEntry) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-4s │ %-28s │ %6s │ %-19s\n", "ID", "Food", "kcal", "Logged"))
	b.WriteString(strings.Repeat("─", 5) + "┼" + strings.Repeat("─", 30) + "┼" + strings.Repeat("─", 8) + "┼" + strings.Repeat("─", 20) + "\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-4d │ %-28s │ %6s │ %-19s\n",
			e.EntryID, fitText(e.FoodName, 28), valueOrDash(e.Calories, "%.0f"), fitText(e.CreatedOn, 19)))
	}
	b.WriteString(fmt.Sprintf("Total: %.0f kcal\n", models.TotalCalories(entries)))
	return b.String()
}

func renderFacts(facts []models.NutritionFact) string {
	if len(facts) == 0 {
		return "No matches.\n"
	}

	var b strings.Builder
	for _, f := range facts {
		line := fmt.Sprintf("%s (%s): %d kcal, protein %dg, carbs %dg, fat %dg",
			f.Name, f.Serving, f.Calories, f.Protein, f.Carbs, f.Fat)
		if f.Demo {
			line += " " + demoStyle.Render("(estimate)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func describeScan(r models.FoodScanResult) string {
	s := fmt.Sprintf("%s, %s kcal", r.FoodName, valueOrDash(r.Calories, "%.0f"))
	if r.Confidence != nil {
		s += fmt.Sprintf(" (%.0f%% sure)", *r.Confidence*100)
	}
	if r.Demo {
		s += " [demo]"
	}
	return s
}

// entriesText is the plain-text food log placed on the clipboard.
func entriesText(entries []models.FoodEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s\t%s\t%s kcal\n", e.CreatedOn, e.FoodName, valueOrDash(e.Calories, "%.0f")))
	}
	b.WriteString(fmt.Sprintf("Total\t\t%.0f kcal\n", models.TotalCalories(entries)))
	return b.String()
}
