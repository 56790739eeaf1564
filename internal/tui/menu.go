package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	hint  string
	page  string
}

// MenuModel is the start page of the sign-in flow. It also shows why the
// user was signed out, if a [SignedOutNotice] arrived.
type MenuModel struct {
	items  []menuItem
	cursor int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Log in", hint: "I already have an account", page: pageLogin},
			{label: "Register", hint: "create an account and set up my profile", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignedOutNotice:
		m.status = msg.Reason

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, keys.down):
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case key.Matches(msg, keys.enter):
			m.status = ""
			page := m.items[m.cursor].page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status) + "\n\n")
	}
	b.WriteString("Track your meals and reach your goal.\n\n")

	labelWidth := 0
	for _, item := range m.items {
		labelWidth = max(labelWidth, len(item.label))
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + item.label + strings.Repeat(" ", labelWidth-len(item.label)))
		b.WriteString("   " + helpStyle.Render(item.hint) + "\n")
	}

	return renderPage("HEALTH PANDA", b.String(), "enter: select │ ↑/↓: move │ v: version")
}
