package drag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetdeck/internal/kvstore"
	"widgetdeck/internal/layout"
	"widgetdeck/internal/persist"
	"widgetdeck/internal/store"
	"widgetdeck/internal/widget"
)

func scenarioDefaults() widget.Layout {
	return widget.Layout{
		{ID: "a", Title: "A", Order: 1, Visible: true, Size: widget.SizeNarrow},
		{ID: "b", Title: "B", Order: 2, Visible: true, Size: widget.SizeMedium},
	}
}

type harness struct {
	store *store.Store
	mode  layout.Mode
	slots map[string]string
	coord *Coordinator
}

func newHarness(t *testing.T, defaults widget.Layout) *harness {
	t.Helper()
	h := &harness{
		store: store.Bootstrap(context.Background(), persist.New(kvstore.NewMemoryStore(), "k"), defaults),
		mode:  layout.ModeEdit,
		slots: map[string]string{},
	}
	for _, id := range defaults.IDs() {
		h.slots[id] = id
	}
	h.coord = New(h.store, func() []string { return layout.RenderedIDs(h.render()) })
	return h
}

func (h *harness) render() []layout.Item[string] {
	return layout.Render(h.store.GetAll(), h.slots, h.mode)
}

func TestCoordinator_StateMachine(t *testing.T) {
	h := newHarness(t, scenarioDefaults())
	c := h.coord
	assert.Equal(t, Idle, c.State())

	require.True(t, c.Start("a"))
	assert.Equal(t, Dragging, c.State())
	assert.Equal(t, "a", c.Active())

	c.Over("b")
	assert.Equal(t, "b", c.Hover())
	assert.Equal(t, []string{"a", "b"}, h.store.GetAll().IDs(), "over must not mutate")

	moved, err := c.End(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.Active())
	assert.Equal(t, []string{"b", "a"}, h.store.GetAll().IDs())
}

func TestCoordinator_NoMutationCases(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		overID string
	}{
		{"drop on self", "a", "a"},
		{"no target", "a", ""},
		{"stale target", "a", "ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, scenarioDefaults())
			require.True(t, h.coord.Start(tt.start))
			moved, err := h.coord.End(context.Background(), tt.overID)
			require.NoError(t, err)
			assert.False(t, moved)
			assert.Equal(t, Idle, h.coord.State())
			assert.Equal(t, scenarioDefaults(), h.store.GetAll())
		})
	}
}

func TestCoordinator_IgnoresUnrenderedStart(t *testing.T) {
	h := newHarness(t, scenarioDefaults())
	h.mode = layout.ModeView
	require.NoError(t, h.store.Mutate(context.Background(), "toggle", func(l widget.Layout) widget.Layout {
		return layout.ToggleVisibility(l, "a")
	}))

	assert.False(t, h.coord.Start("a"), "hidden entries are not draggable in View mode")
	assert.Equal(t, Idle, h.coord.State())
	assert.False(t, h.coord.Start("zzz"))
}

func TestCoordinator_EndWithoutStart(t *testing.T) {
	h := newHarness(t, scenarioDefaults())
	h.coord.Over("b")
	assert.Empty(t, h.coord.Hover())
	moved, err := h.coord.End(context.Background(), "b")
	assert.NoError(t, err)
	assert.False(t, moved)
}

func TestCoordinator_Cancel(t *testing.T) {
	h := newHarness(t, scenarioDefaults())
	require.True(t, h.coord.Start("b"))
	h.coord.Cancel()
	assert.Equal(t, Idle, h.coord.State())
	moved, _ := h.coord.End(context.Background(), "a")
	assert.False(t, moved)
	assert.Equal(t, []string{"a", "b"}, h.store.GetAll().IDs())
}

func TestCoordinator_SkipsHiddenEntriesInViewMode(t *testing.T) {
	defaults := widget.Layout{
		{ID: "A", Order: 1, Visible: true, Size: widget.SizeWide},
		{ID: "H", Order: 2, Visible: false, Size: widget.SizeWide},
		{ID: "B", Order: 3, Visible: true, Size: widget.SizeWide},
		{ID: "C", Order: 4, Visible: true, Size: widget.SizeWide},
	}
	h := newHarness(t, defaults)
	h.mode = layout.ModeView
	assert.Equal(t, []string{"A", "B", "C"}, layout.RenderedIDs(h.render()))

	require.True(t, h.coord.Start("C"))
	moved, err := h.coord.End(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, moved)

	assert.Equal(t, []string{"C", "A", "H", "B"}, h.store.GetAll().IDs())
	assert.NoError(t, widget.Validate(h.store.GetAll()))
	assert.Equal(t, []string{"C", "A", "B"}, layout.RenderedIDs(h.render()))
}

// Hide "a", then drag "b" before "a".
func TestScenario_HideThenDrag(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, scenarioDefaults())

	require.NoError(t, h.store.Mutate(ctx, "toggle", func(l widget.Layout) widget.Layout {
		return layout.ToggleVisibility(l, "a")
	}))

	require.True(t, h.coord.Start("b"))
	h.coord.Over("a")
	moved, err := h.coord.End(ctx, "a")
	require.NoError(t, err)
	require.True(t, moved)

	got := h.store.GetAll()
	require.Len(t, got, 2)
	assert.Equal(t, widget.Config{ID: "b", Title: "B", Order: 1, Visible: true, Size: widget.SizeMedium}, got[0])
	assert.Equal(t, widget.Config{ID: "a", Title: "A", Order: 2, Visible: false, Size: widget.SizeNarrow}, got[1])

	h.mode = layout.ModeView
	assert.Equal(t, []string{"b"}, layout.RenderedIDs(h.render()))

	h.mode = layout.ModeEdit
	items := h.render()
	assert.Equal(t, []string{"b", "a"}, layout.RenderedIDs(items))
	assert.False(t, items[0].Dimmed)
	assert.True(t, items[1].Dimmed)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Dragging", Dragging.String())
	assert.Equal(t, "Unknown", State(7).String())
}
