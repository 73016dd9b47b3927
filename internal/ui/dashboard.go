package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widgetdeck/internal/drag"
	"widgetdeck/internal/layout"
	"widgetdeck/internal/widget"
)

// dashboardHeaderLines is the number of lines drawn above the grid.
// Mouse hit-testing depends on it.
const dashboardHeaderLines = 2

const (
	defaultWidth  = 96
	defaultHeight = 30
)

// DashboardView draws the panel grid and turns mouse gestures into drag
// coordinator calls. It never mutates the layout itself.
type DashboardView struct {
	Slots  map[string]Slot
	Layout func() widget.Layout
	Mode   *layout.EditMode
	Drag   *drag.Coordinator
	Focus  FocusManager

	// Hints is the single-key help line drawn under the title.
	Hints string

	width  int
	height int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard reading the layout through source.
func NewDashboardView(slots map[string]Slot, source func() widget.Layout, mode *layout.EditMode) *DashboardView {
	d := &DashboardView{
		Slots:  slots,
		Layout: source,
		Mode:   mode,
		width:  defaultWidth,
		height: defaultHeight,
	}
	d.SyncFocus()
	return d
}

// Items returns the panels to draw, in display order.
func (d *DashboardView) Items() []layout.Item[Slot] {
	if d.Layout == nil {
		return nil
	}
	return layout.Render(d.Layout(), d.Slots, d.mode())
}

// RenderedIDs returns the ids currently on screen, in display order.
func (d *DashboardView) RenderedIDs() []string {
	return layout.RenderedIDs(d.Items())
}

// Selected returns the id of the selected panel, or "".
func (d *DashboardView) Selected() string {
	return d.Focus.Current
}

// SyncFocus re-reads the rendered sequence into the focus order.
func (d *DashboardView) SyncFocus() {
	d.Focus.SetOrder(d.RenderedIDs())
}

// Size returns the last known terminal size.
func (d *DashboardView) Size() (int, int) {
	return d.width, d.height
}

func (d *DashboardView) mode() layout.Mode {
	if d.Mode == nil {
		return layout.ModeView
	}
	return d.Mode.Current
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil
	case tea.KeyMsg:
		d.SyncFocus()
		switch msg.String() {
		case "j", "down", "l", "right", "tab":
			d.Focus.Next()
		case "k", "up", "h", "left", "shift+tab":
			d.Focus.Prev()
		case "g", "home":
			d.Focus.First()
		case "G", "end":
			d.Focus.Last()
		case "esc":
			if d.Drag != nil && d.Drag.State() == drag.Dragging {
				d.Drag.Cancel()
			}
		}
		return d, nil
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	}
	return d, nil
}

// handleMouse is the gesture adapter: press starts a drag, motion reports
// the panel under the pointer, release ends the drag over it.
func (d *DashboardView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	target := hitTest(gridLayout(d.Items(), d.width), msg.X, msg.Y-dashboardHeaderLines)
	editing := d.mode() == layout.ModeEdit

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || target == "" {
			return nil
		}
		d.SyncFocus()
		d.Focus.SetFocus(target)
		if editing && d.Drag != nil {
			d.Drag.Start(target)
		}
	case tea.MouseActionMotion:
		if d.Drag != nil {
			d.Drag.Over(target)
		}
	case tea.MouseActionRelease:
		if d.Drag == nil || d.Drag.State() != drag.Dragging {
			return nil
		}
		if _, err := d.Drag.End(context.Background(), target); err != nil {
			return func() tea.Msg { return LayoutErrorMsg{Err: err} }
		}
		d.SyncFocus()
	}
	return nil
}

// View implements View.
func (d *DashboardView) View() string {
	mode := d.mode()
	items := d.Items()

	var b strings.Builder
	modeLabel := Styles.ModeView.Render("View")
	if mode == layout.ModeEdit {
		modeLabel = Styles.ModeEdit.Render("Edit")
	}
	title := fmt.Sprintf("%s  %s  %s", Styles.Title.Render("Dashboard"), modeLabel,
		Styles.Muted.Render(fmt.Sprintf("%d panels", len(items))))
	oneLine := lipgloss.NewStyle().MaxWidth(d.width).MaxHeight(1)
	b.WriteString(oneLine.Render(title) + "\n")
	b.WriteString(oneLine.Render(d.Hints) + "\n")

	if len(items) == 0 {
		b.WriteString(Styles.Muted.Italic(true).Render("No panels to show. Press e to edit the layout."))
		return b.String()
	}

	var active, hover string
	if d.Drag != nil && d.Drag.State() == drag.Dragging {
		active, hover = d.Drag.Active(), d.Drag.Hover()
	}

	rows := gridLayout(items, d.width)
	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		panels := make([]string, 0, len(row))
		for _, c := range row {
			panels = append(panels, renderPanel(c.Item, c.W, panelState{
				Selected: c.ID == d.Focus.Current,
				Dragging: c.ID == active,
				DropOver: c.ID == hover && hover != active,
				Editing:  mode == layout.ModeEdit,
			}))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rendered...))
	return b.String()
}
