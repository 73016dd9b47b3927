package layout

import "widgetdeck/internal/widget"

// Item pairs a config with its slot content, ready for display.
type Item[T any] struct {
	Config  widget.Config
	Content T
	// Dimmed marks a hidden entry kept in Edit mode.
	Dimmed bool
}

// Render joins l with slots in ascending Order. View mode drops hidden
// entries; Edit mode keeps them Dimmed. Entries without a slot and slots
// without an entry are skipped, so a persisted layout that drifted from the
// available panels still renders.
func Render[T any](l widget.Layout, slots map[string]T, mode Mode) []Item[T] {
	sorted := l.Sorted()
	out := make([]Item[T], 0, len(sorted))
	for _, c := range sorted {
		if !c.Visible && mode != ModeEdit {
			continue
		}
		content, ok := slots[c.ID]
		if !ok {
			continue
		}
		out = append(out, Item[T]{Config: c, Content: content, Dimmed: !c.Visible})
	}
	return out
}

// RenderedIDs returns the ids of items in display order.
func RenderedIDs[T any](items []Item[T]) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.Config.ID
	}
	return ids
}
