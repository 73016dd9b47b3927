package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"widgetdeck/internal/layout"
	"widgetdeck/internal/ui/textutil"
)

// Slot renders a panel body for the given inner width.
// The dashboard owns the frame and title; slots only produce content.
type Slot func(width int) string

// PanelHeight is the fixed height of every panel, borders included.
const PanelHeight = 7

// dragHandle is drawn before the title in Edit mode.
const dragHandle = "⠿"

// panelState is how a panel is framed this frame.
type panelState struct {
	Selected bool
	Dragging bool
	DropOver bool
	Editing  bool
}

// renderPanel draws one item into a w x PanelHeight box.
func renderPanel(item layout.Item[Slot], w int, st panelState) string {
	innerW := w - 2
	if innerW < 1 {
		innerW = 1
	}
	innerH := PanelHeight - 2

	title := item.Config.Title
	if title == "" {
		title = item.Config.ID
	}
	if st.Editing {
		title = dragHandle + " " + title
		suffix := fmt.Sprintf(" [%s]", item.Config.Size)
		if item.Dimmed {
			suffix = " (hidden)" + suffix
		}
		title = textutil.Truncate(title, innerW-textutil.VisualWidth(suffix)) + suffix
	}
	title = textutil.Truncate(title, innerW)

	body := ""
	if item.Content != nil {
		body = item.Content(innerW)
	}
	body = textutil.FitBlock(body, innerW, innerH-1)

	titleStyle := Styles.PanelTitle
	bodyStyle := Styles.Normal
	if item.Dimmed {
		titleStyle = Styles.Dimmed
		bodyStyle = Styles.Dimmed
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), bodyStyle.Render(body))
	return panelFrame(st).
		Width(innerW).
		Height(innerH).
		Render(content)
}

func panelFrame(st panelState) lipgloss.Style {
	switch {
	case st.Dragging:
		return Styles.PanelDragging
	case st.DropOver:
		return Styles.PanelDropOver
	case st.Selected:
		return Styles.PanelSelected
	default:
		return Styles.Panel
	}
}
