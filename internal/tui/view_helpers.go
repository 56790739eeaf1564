package tui

import (
	"fmt"
	"strings"
)

var divider = "  " + strings.Repeat("─", 54)

// renderPage lays out a screen: title, divider, indented body, divider,
// screen-specific hot keys and the global quit hint.
func renderPage(title, body, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(divider + "\n\n")

	body = strings.TrimRight(body, "\n")
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n" + divider + "\n")
	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  " + hotKeys + "\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// fitText cuts v to at most n bytes, marking the cut with "...".
func fitText(v string, n int) string {
	switch {
	case n <= 0 || len(v) <= n:
		return v
	case n <= 3:
		return v[:n]
	default:
		return v[:n-3] + "..."
	}
}
