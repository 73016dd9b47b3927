package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"widgetdeck/internal/layout"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// When the handler buffer holds e.g. "SPC l", next-level hints are shown.
func RenderKeybindHelp(keyHandler *KeyHandler, mode layout.Mode) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	content := Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return boxStyle.Render(content)
}

// RenderModeHints renders the single-key bindings active in mode as one line.
func RenderModeHints(reg *KeybindRegistry, mode layout.Mode) string {
	if reg == nil {
		return ""
	}
	bindings := hintBindings(reg.SingleKeyHints(mode), false)
	if len(bindings) == 0 {
		return ""
	}
	return newHelpModel().ShortHelpView(bindings)
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h
}
