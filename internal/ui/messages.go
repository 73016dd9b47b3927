package ui

import "widgetdeck/internal/widget"

// Messages without an ID act on the selected panel.

// ToggleModeMsg switches between View and Edit mode (e).
type ToggleModeMsg struct{}

// ToggleVisibilityMsg shows or hides a panel (v, or space in settings).
type ToggleVisibilityMsg struct {
	ID string
}

// CycleSizeMsg advances a panel to the next size class (s).
type CycleSizeMsg struct {
	ID string
}

// SetSizeMsg sets a panel's size class directly (1/2/3).
type SetSizeMsg struct {
	ID   string
	Size widget.Size
}

// MoveWidgetMsg moves the selected panel past its on-screen neighbor (K/J).
type MoveWidgetMsg struct {
	Delta int
}

// SettingsMoveMsg reorders a panel from the settings dialog.
type SettingsMoveMsg struct {
	ID    string
	Delta int
}

// ShowAllMsg makes every panel visible (SPC l a).
type ShowAllMsg struct{}

// RequestResetMsg opens the reset confirmation (SPC l r).
type RequestResetMsg struct{}

// ResetLayoutMsg replaces the layout with the default set. Sent on confirm.
type ResetLayoutMsg struct{}

// OpenSettingsMsg opens the layout settings dialog (SPC l s, Edit mode).
type OpenSettingsMsg struct{}

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// LayoutErrorMsg reports a refused or unsaved layout write.
type LayoutErrorMsg struct {
	Err error
}
