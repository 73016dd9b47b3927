package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"widgetdeck/internal/widget"
)

// LayoutSettingsModal lists every panel, hidden ones included, and edits
// visibility, order, and size without going through the grid.
type LayoutSettingsModal struct {
	list list.Model
}

type settingsItem struct {
	cfg widget.Config
}

func (i settingsItem) FilterValue() string { return i.cfg.Title }
func (i settingsItem) Title() string {
	mark := "[x]"
	if !i.cfg.Visible {
		mark = "[ ]"
	}
	title := i.cfg.Title
	if title == "" {
		title = i.cfg.ID
	}
	return fmt.Sprintf("%s %d. %s (%s)", mark, i.cfg.Order, title, i.cfg.Size)
}
func (i settingsItem) Description() string { return i.cfg.ID }

// Ensure LayoutSettingsModal implements View.
var _ View = (*LayoutSettingsModal)(nil)

// NewLayoutSettingsModal creates the settings dialog for l.
func NewLayoutSettingsModal(l widget.Layout) *LayoutSettingsModal {
	delegate := NewCompactListDelegate()
	lm := list.New(nil, delegate, 44, 12)
	lm.Title = "Layout"
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(false)
	lm.SetShowHelp(false)
	lm.DisableQuitKeybindings()
	lm.Styles.Title = Styles.Title
	m := &LayoutSettingsModal{list: lm}
	m.Refresh(l)
	return m
}

// Refresh rebuilds the rows from l, keeping the cursor on the same panel.
func (m *LayoutSettingsModal) Refresh(l widget.Layout) {
	selected := m.SelectedID()
	sorted := l.Sorted()
	items := make([]list.Item, len(sorted))
	cursor := 0
	for i, c := range sorted {
		items[i] = settingsItem{cfg: c}
		if c.ID == selected {
			cursor = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(cursor)
}

// SelectedID returns the id under the cursor, or "".
func (m *LayoutSettingsModal) SelectedID() string {
	if sel, ok := m.list.SelectedItem().(settingsItem); ok {
		return sel.cfg.ID
	}
	return ""
}

// Init implements View.
func (m *LayoutSettingsModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *LayoutSettingsModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		id := m.SelectedID()
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case " ", "v":
			if id == "" {
				return m, nil
			}
			return m, func() tea.Msg { return ToggleVisibilityMsg{ID: id} }
		case "s":
			if id == "" {
				return m, nil
			}
			return m, func() tea.Msg { return CycleSizeMsg{ID: id} }
		case "K", "shift+up":
			if id == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SettingsMoveMsg{ID: id, Delta: -1} }
		case "J", "shift+down":
			if id == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SettingsMoveMsg{ID: id, Delta: 1} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *LayoutSettingsModal) View() string {
	help := "Space: show/hide  K/J: move  s: size  Esc: close"
	return Styles.Box.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
