package tui

import (
	"github.com/MKhiriev/health-panda/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	forceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"))
	buildInfoKey = key.NewBinding(key.WithKeys("v"))
)

// RootModel routes messages to the active page of one flow. It switches
// pages on [NavigateTo], quits on ctrl+c, overlays build info when v is
// pressed on the menu and ends the program once the flow reached its goal:
// a successful login, registration or profile save.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	quitByUser bool
	completed  bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, forceQuitKey) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			// the overlay swallows keys until it is closed
			if key.Matches(msg, keys.esc, buildInfoKey) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if _, onMenu := r.current.(*MenuModel); onMenu && key.Matches(msg, buildInfoKey) {
			r.showBuildInfo = true
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)

	case LoginResult:
		if msg.Err == nil {
			return r.complete()
		}
	case RegisterResult:
		if msg.Err == nil {
			return r.complete()
		}
	case ProfileSaved:
		if msg.Err == nil {
			return r.complete()
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("HEALTH PANDA", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next

	if nav.Payload == nil {
		return r, next.Init()
	}
	payload := nav.Payload
	return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
}

func (r RootModel) complete() (tea.Model, tea.Cmd) {
	r.completed = true
	return r, tea.Quit
}
