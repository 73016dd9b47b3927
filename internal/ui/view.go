package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: the dashboard and every modal implement
// it. Update returns the view to keep, which is usually the receiver.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
