package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"widgetdeck/internal/drag"
	"widgetdeck/internal/layout"
	"widgetdeck/internal/store"
	"widgetdeck/internal/widget"
)

// AppModel is the root model: the dashboard, the overlay stack, and the
// keybind system. Every layout change goes through Store.
type AppModel struct {
	Store      *store.Store
	Defaults   widget.Layout
	Mode       *layout.EditMode
	Dashboard  *DashboardView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Log        zerolog.Logger

	// Err is the last failed write, shown in the status line until the next
	// successful one.
	Err error

	unsubscribe func()
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model over s. defaults is the
// set restored by "reset layout"; slots supplies panel bodies by id.
func NewAppModel(s *store.Store, defaults widget.Layout, slots map[string]Slot, log zerolog.Logger) *AppModel {
	a := &AppModel{
		Store:    s,
		Defaults: defaults.Clone(),
		Log:      log,
	}
	a.Mode = &layout.EditMode{OnChange: a.onModeChange}
	a.Dashboard = NewDashboardView(slots, s.GetAll, a.Mode)
	a.Dashboard.Drag = drag.New(s, a.Dashboard.RenderedIDs)
	a.KeyHandler = NewKeyHandler(newRegistry())
	a.unsubscribe = s.Subscribe(a.onLayoutChange)
	return a
}

func newRegistry() *KeybindRegistry {
	edit := []layout.Mode{layout.ModeEdit}
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("e", msg(ToggleModeMsg{}), "Edit/done")

	reg.BindWithDescForMode("v", msg(ToggleVisibilityMsg{}), "Show/hide", edit)
	reg.BindWithDescForMode("s", msg(CycleSizeMsg{}), "Size", edit)
	reg.BindWithDescForMode("1", msg(SetSizeMsg{Size: widget.SizeNarrow}), "Narrow", edit)
	reg.BindWithDescForMode("2", msg(SetSizeMsg{Size: widget.SizeMedium}), "Medium", edit)
	reg.BindWithDescForMode("3", msg(SetSizeMsg{Size: widget.SizeWide}), "Wide", edit)
	reg.BindWithDescForMode("K", msg(MoveWidgetMsg{Delta: -1}), "Move back", edit)
	reg.BindWithDescForMode("J", msg(MoveWidgetMsg{Delta: 1}), "Move forward", edit)

	reg.BindWithDesc("SPC l e", msg(ToggleModeMsg{}), "Edit mode")
	reg.BindWithDesc("SPC l a", msg(ShowAllMsg{}), "Show all")
	reg.BindWithDesc("SPC l r", msg(RequestResetMsg{}), "Reset")
	reg.BindWithDescForMode("SPC l s", msg(OpenSettingsMsg{}), "Settings", edit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close detaches the model from the store.
func (a *AppModel) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *AppModel) onModeChange(from, to layout.Mode) {
	if to == layout.ModeView && a.Dashboard.Drag != nil {
		a.Dashboard.Drag.Cancel()
	}
	a.Dashboard.SyncFocus()
	a.Log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("mode changed")
}

func (a *AppModel) onLayoutChange(l widget.Layout) {
	a.Dashboard.SyncFocus()
	if top, ok := a.Overlays.Peek(); ok {
		if m, ok := top.View.(*LayoutSettingsModal); ok {
			m.Refresh(l)
		}
	}
}

// mutate runs one store write and records the outcome for the status line.
func (a *AppModel) mutate(op string, fn func(widget.Layout) widget.Layout) {
	if err := a.Store.Mutate(context.Background(), op, fn); err != nil {
		a.fail(op, err)
		return
	}
	a.Err = nil
}

func (a *AppModel) fail(op string, err error) {
	a.Err = err
	a.Log.Warn().Err(err).Str("op", op).Msg("layout change failed")
}

// target resolves an empty id to the selected panel.
func (a *AppModel) target(id string) string {
	if id != "" {
		return id
	}
	return a.Dashboard.Selected()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Dashboard.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		_, cmd := a.Dashboard.Update(msg)
		return a, cmd

	case ToggleModeMsg:
		a.Mode.Toggle()
		return a, nil

	case ToggleVisibilityMsg:
		if id := a.target(msg.ID); id != "" {
			a.mutate("toggle", func(l widget.Layout) widget.Layout {
				return layout.ToggleVisibility(l, id)
			})
		}
		return a, nil

	case CycleSizeMsg:
		if id := a.target(msg.ID); id != "" {
			a.mutate("resize", func(l widget.Layout) widget.Layout {
				return layout.CycleSize(l, id)
			})
		}
		return a, nil

	case SetSizeMsg:
		if id := a.target(msg.ID); id != "" {
			a.mutate("resize", func(l widget.Layout) widget.Layout {
				return layout.SetSize(l, id, msg.Size)
			})
		}
		return a, nil

	case MoveWidgetMsg:
		a.moveSelected(msg.Delta)
		return a, nil

	case SettingsMoveMsg:
		a.mutate("reorder", func(l widget.Layout) widget.Layout {
			return layout.MoveBy(l, msg.ID, msg.Delta)
		})
		return a, nil

	case ShowAllMsg:
		a.mutate("show_all", layout.ShowAll)
		return a, nil

	case RequestResetMsg:
		a.Overlays.Push(Overlay{View: NewResetLayoutConfirmModal(), Dismiss: "esc"})
		return a, nil

	case ResetLayoutMsg:
		a.Overlays.Pop()
		defaults := a.Defaults
		a.mutate("reset", func(widget.Layout) widget.Layout {
			return layout.ResetToDefault(defaults)
		})
		a.Dashboard.Focus.First()
		return a, nil

	case OpenSettingsMsg:
		a.Overlays.Push(Overlay{View: NewLayoutSettingsModal(a.Store.GetAll()), Dismiss: "esc"})
		return a, nil

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case LayoutErrorMsg:
		a.fail("drag", msg.Err)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Overlays take keys before the keybind system
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode.Current); consumed {
				return a, keyCmd
			}
		}

	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	}

	_, cmd := a.Dashboard.Update(msg)
	return a, cmd
}

// moveSelected moves the selected panel past its on-screen neighbor using
// the same path as a mouse drag.
func (a *AppModel) moveSelected(delta int) {
	d := a.Dashboard
	d.SyncFocus()
	id, over := d.Selected(), d.Focus.Neighbor(delta)
	if id == "" || over == "" || d.Drag == nil || !d.Drag.Start(id) {
		return
	}
	if _, err := d.Drag.End(context.Background(), over); err != nil {
		a.fail("reorder", err)
		return
	}
	a.Err = nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	d := a.Dashboard
	d.Hints = RenderModeHints(a.KeyHandler.Registry, a.Mode.Current)

	if a.Overlays.Len() > 0 {
		w, h := d.Size()
		return a.Overlays.Render(w, h)
	}

	base := d.View()
	if a.Err != nil {
		base += "\n" + Styles.Error.Render("error: "+a.Err.Error())
	}
	if a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode.Current)
	}
	return base
}
