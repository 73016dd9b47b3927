package layout

// Mode gates which mutation affordances the dashboard exposes.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "View"
	case ModeEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeEdit {
		return ModeView
	}
	return ModeEdit
}

// EditMode holds the current mode. Transitions never touch layout data.
type EditMode struct {
	Current  Mode
	OnChange func(from, to Mode)
}

// Toggle flips the mode and returns the new value.
func (e *EditMode) Toggle() Mode {
	from := e.Current
	e.Current = from.Toggle()
	if e.OnChange != nil {
		e.OnChange(from, e.Current)
	}
	return e.Current
}

// Editing reports whether drag handles and per-widget menus are exposed.
func (e *EditMode) Editing() bool {
	return e.Current == ModeEdit
}
