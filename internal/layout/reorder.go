// Package layout holds the pure operations over a widget.Layout: reorder,
// visibility, resize, and the join that turns a layout plus caller-supplied
// slots into the sequence the dashboard draws.
//
// Every function returns a new Layout and leaves its input untouched.
package layout

import "widgetdeck/internal/widget"

// Reorder moves the entry at source to target and renumbers every Order to
// its new position + 1. Indices address the layout in ascending Order.
// Equal or out-of-range indices return an unchanged copy.
func Reorder(l widget.Layout, source, target int) widget.Layout {
	sorted := l.Sorted()
	n := len(sorted)
	if source == target || source < 0 || target < 0 || source >= n || target >= n {
		return sorted
	}

	moved := sorted[source]
	rest := append(sorted[:source:source], sorted[source+1:]...)

	out := make(widget.Layout, 0, n)
	out = append(out, rest[:target]...)
	out = append(out, moved)
	out = append(out, rest[target:]...)

	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// IndexOf returns the position of id in l's ascending Order, or -1.
func IndexOf(l widget.Layout, id string) int {
	return l.Sorted().Index(id)
}

// MoveBy shifts the entry with id by delta positions, clamped to the ends.
// Unknown ids are a no-op.
func MoveBy(l widget.Layout, id string, delta int) widget.Layout {
	from := IndexOf(l, id)
	if from < 0 {
		return l.Sorted()
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to >= len(l) {
		to = len(l) - 1
	}
	return Reorder(l, from, to)
}

// ReorderByID moves activeID into overID's position. Either id missing is a no-op.
func ReorderByID(l widget.Layout, activeID, overID string) widget.Layout {
	return Reorder(l, IndexOf(l, activeID), IndexOf(l, overID))
}
