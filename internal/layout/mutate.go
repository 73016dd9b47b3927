package layout

import "widgetdeck/internal/widget"

// ToggleVisibility flips Visible on the entry matching id.
func ToggleVisibility(l widget.Layout, id string) widget.Layout {
	out := l.Clone()
	if i := out.Index(id); i >= 0 {
		out[i].Visible = !out[i].Visible
	}
	return out
}

// ShowAll marks every entry visible.
func ShowAll(l widget.Layout) widget.Layout {
	out := l.Clone()
	for i := range out {
		out[i].Visible = true
	}
	return out
}

// ResetToDefault returns a fresh copy of defaults. The current layout is
// discarded, not merged.
func ResetToDefault(defaults widget.Layout) widget.Layout {
	return defaults.Clone()
}

// SetSize sets the size class of the entry matching id.
// Unknown ids and sizes outside the enumerated classes are a no-op.
func SetSize(l widget.Layout, id string, size widget.Size) widget.Layout {
	out := l.Clone()
	if !size.Valid() {
		return out
	}
	if i := out.Index(id); i >= 0 {
		out[i].Size = size
	}
	return out
}

// CycleSize advances the entry matching id to the next size class.
func CycleSize(l widget.Layout, id string) widget.Layout {
	i := l.Index(id)
	if i < 0 {
		return l.Clone()
	}
	return SetSize(l, id, l[i].Size.Next())
}
