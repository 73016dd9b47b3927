// Package widget defines the persisted configuration of dashboard panels.
//
// A Layout is the full ordered collection of panel configs for one user.
// Every Layout handed to the store must satisfy Validate: unique ids,
// dense 1-based orders and a known size class.
package widget

import (
	"fmt"
	"sort"
)

// Size is the column-span class of a panel.
type Size string

const (
	SizeNarrow Size = "narrow"
	SizeMedium Size = "medium"
	SizeWide   Size = "wide"
)

// GridColumns is the width of the dashboard grid in spans.
const GridColumns = 12

// Sizes lists the size classes in cycle order.
var Sizes = []Size{SizeNarrow, SizeMedium, SizeWide}

// Valid reports whether s is one of the enumerated size classes.
func (s Size) Valid() bool {
	switch s {
	case SizeNarrow, SizeMedium, SizeWide:
		return true
	}
	return false
}

// Span returns the number of grid columns the size occupies.
// Unknown sizes span like medium.
func (s Size) Span() int {
	switch s {
	case SizeNarrow:
		return 4
	case SizeWide:
		return GridColumns
	default:
		return 6
	}
}

// Next returns the following size class, wrapping wide back to narrow.
func (s Size) Next() Size {
	for i, sz := range Sizes {
		if sz == s {
			return Sizes[(i+1)%len(Sizes)]
		}
	}
	return SizeNarrow
}

// Config is a single panel's persisted configuration.
type Config struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
	Order   int    `json:"order"`
	Size    Size   `json:"size"`
}

// Layout is the ordered collection of all panel configs for a session.
type Layout []Config

// Clone returns a copy that shares no backing array with l.
// A nil layout clones to nil.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Sorted returns a copy of l in ascending Order. Ties keep their relative position.
func (l Layout) Sorted() Layout {
	out := l.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Index returns the position of id in l, or -1.
func (l Layout) Index(id string) int {
	for i, c := range l {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns the ids of l in slice order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l))
	for i, c := range l {
		ids[i] = c.ID
	}
	return ids
}

// Equal reports whether both layouts hold the same configs in the same order.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Normalize returns l sorted by Order with orders renumbered 1..N.
// Duplicate ids are left alone; Validate rejects them.
func Normalize(l Layout) Layout {
	out := l.Sorted()
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// CheckUniqueIDs returns ErrDuplicateID if any id repeats.
func CheckUniqueIDs(l Layout) error {
	seen := make(map[string]struct{}, len(l))
	for _, c := range l {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// Validate checks all layout invariants.
func Validate(l Layout) error {
	if err := CheckUniqueIDs(l); err != nil {
		return err
	}
	seen := make([]bool, len(l)+1)
	for _, c := range l {
		if c.ID == "" {
			return ErrEmptyID
		}
		if !c.Size.Valid() {
			return fmt.Errorf("%w: %q on %q", ErrInvalidSize, c.Size, c.ID)
		}
		if c.Order < 1 || c.Order > len(l) || seen[c.Order] {
			return fmt.Errorf("%w: order %d on %q", ErrOrderGap, c.Order, c.ID)
		}
		seen[c.Order] = true
	}
	return nil
}
