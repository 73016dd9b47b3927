package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, drag source
	ColorHighlight = "205" // Magenta - selected panel, keys
	ColorDanger    = "196" // Red - warnings, errors
	ColorMuted     = "241" // Gray - hints, hidden panels
	ColorText      = "252" // Light gray - panel bodies
	ColorWarning   = "208" // Orange - drop target
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box       lipgloss.Style // modal box
	BoxDanger lipgloss.Style // destructive-action modal box

	// Panel borders by state
	Panel         lipgloss.Style
	PanelSelected lipgloss.Style
	PanelDragging lipgloss.Style
	PanelDropOver lipgloss.Style

	PanelTitle lipgloss.Style
	Dimmed     lipgloss.Style // hidden panels in Edit mode
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	Normal     lipgloss.Style
	Hint       lipgloss.Style
	Error      lipgloss.Style
	ModeEdit   lipgloss.Style
	ModeView   lipgloss.Style
	Label      lipgloss.Style
	Details    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	PanelDragging: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	PanelDropOver: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Dimmed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	ModeEdit: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	ModeView: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
