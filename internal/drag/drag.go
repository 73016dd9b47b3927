// Package drag turns a start/over/end gesture into a layout reorder.
//
// The coordinator knows nothing about mice or keys; the UI adapter
// translates its native events into Start, Over and End.
package drag

import (
	"context"
	"slices"

	"widgetdeck/internal/layout"
	"widgetdeck/internal/widget"
)

// State is the coordinator state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Mutator applies a layout change. *store.Store implements it.
type Mutator interface {
	Mutate(ctx context.Context, op string, fn func(widget.Layout) widget.Layout) error
}

// Coordinator tracks one drag at a time.
type Coordinator struct {
	mutator  Mutator
	rendered func() []string

	state  State
	active string
	hover  string
}

// New creates a coordinator. rendered returns the ids currently on screen,
// in display order.
func New(m Mutator, rendered func() []string) *Coordinator {
	return &Coordinator{mutator: m, rendered: rendered}
}

// State returns the current state.
func (c *Coordinator) State() State { return c.state }

// Active returns the id being dragged, or "".
func (c *Coordinator) Active() string { return c.active }

// Hover returns the id last reported by Over, or "".
func (c *Coordinator) Hover() string { return c.hover }

// Start begins dragging id. Ids not on screen are ignored.
func (c *Coordinator) Start(id string) bool {
	if !c.isRendered(id) {
		return false
	}
	c.state = Dragging
	c.active = id
	c.hover = ""
	return true
}

// Over records the drop target under the pointer. Purely advisory.
func (c *Coordinator) Over(id string) {
	if c.state != Dragging {
		return
	}
	c.hover = id
}

// End finishes the drag over overID and reorders when the target is a
// different on-screen entry. moved reports whether a write happened.
func (c *Coordinator) End(ctx context.Context, overID string) (moved bool, err error) {
	if c.state != Dragging {
		return false, nil
	}
	active := c.active
	c.reset()

	if overID == "" || overID == active {
		return false, nil
	}
	rendered := c.rendered()
	if !slices.Contains(rendered, active) || !slices.Contains(rendered, overID) {
		return false, nil
	}
	if err := c.mutator.Mutate(ctx, "reorder", func(l widget.Layout) widget.Layout {
		return layout.ReorderByID(l, active, overID)
	}); err != nil {
		return true, err
	}
	return true, nil
}

// Cancel abandons the drag without mutating anything.
func (c *Coordinator) Cancel() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.state = Idle
	c.active = ""
	c.hover = ""
}

func (c *Coordinator) isRendered(id string) bool {
	if id == "" || c.rendered == nil {
		return false
	}
	return slices.Contains(c.rendered(), id)
}
