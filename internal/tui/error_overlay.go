package tui

// errorOverlayModel is the box drawn over the dashboard after a failed
// action. It stays until the user closes it with enter or esc.
type errorOverlayModel struct {
	title   string
	message string
}

func (m *errorOverlayModel) show(title, message string) {
	m.title = title
	m.message = message
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.message + "\n\n" +
		helpStyle.Render("enter / esc: back to the dashboard")
	return overlayBoxStyle.Render(content)
}
