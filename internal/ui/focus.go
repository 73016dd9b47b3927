package ui

import "slices"

// FocusManager tracks the selected panel across the rendered sequence.
type FocusManager struct {
	Current  string   // ID of the selected panel
	Order    []string // rendered ids, in display order
	OnChange func(from, to string)
}

// SetOrder replaces the focus order. The current selection survives if it
// is still present; otherwise focus moves to the entry at the same index,
// clamped, or clears when order is empty.
func (f *FocusManager) SetOrder(order []string) {
	prevIdx := slices.Index(f.Order, f.Current)
	f.Order = order
	if slices.Contains(order, f.Current) {
		return
	}
	from := f.Current
	switch {
	case len(order) == 0:
		f.Current = ""
	case prevIdx < 0:
		f.Current = order[0]
	case prevIdx >= len(order):
		f.Current = order[len(order)-1]
	default:
		f.Current = order[prevIdx]
	}
	f.notify(from)
}

// Next advances focus to the next panel, stopping at the last.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous panel, stopping at the first.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// First focuses the first panel.
func (f *FocusManager) First() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.set(f.Order[0])
}

// Last focuses the last panel.
func (f *FocusManager) Last() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.set(f.Order[len(f.Order)-1])
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Neighbor returns the id delta positions from the current one, or "".
func (f *FocusManager) Neighbor(delta int) string {
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 {
		return ""
	}
	n := idx + delta
	if n < 0 || n >= len(f.Order) {
		return ""
	}
	return f.Order[n]
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	next := idx + delta
	if idx < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(f.Order) {
		next = len(f.Order) - 1
	}
	return f.set(f.Order[next])
}

func (f *FocusManager) set(id string) string {
	from := f.Current
	f.Current = id
	f.notify(from)
	return f.Current
}

func (f *FocusManager) notify(from string) {
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
}
