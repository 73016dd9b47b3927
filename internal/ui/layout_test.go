package ui

import (
	"testing"

	"widgetdeck/internal/layout"
	"widgetdeck/internal/widget"
)

func itemsOf(sizes ...widget.Size) []layout.Item[Slot] {
	ids := []string{"a", "b", "c", "d", "e", "f"}
	items := make([]layout.Item[Slot], len(sizes))
	for i, s := range sizes {
		items[i] = layout.Item[Slot]{Config: widget.Config{ID: ids[i], Visible: true, Order: i + 1, Size: s}}
	}
	return items
}

func TestGridLayout_PacksRows(t *testing.T) {
	rows := gridLayout(itemsOf(widget.SizeNarrow, widget.SizeNarrow, widget.SizeNarrow, widget.SizeMedium, widget.SizeWide), 96)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0]) != 3 || len(rows[1]) != 1 || len(rows[2]) != 1 {
		t.Errorf("row sizes = %d/%d/%d", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	c := rows[0][1]
	if c.X != 32 || c.Y != 0 || c.W != 32 || c.H != PanelHeight {
		t.Errorf("second cell = %+v", c)
	}
	if rows[2][0].Y != 2*PanelHeight || rows[2][0].W != 96 {
		t.Errorf("wide cell = %+v", rows[2][0])
	}
}

func TestGridLayout_Empty(t *testing.T) {
	if rows := gridLayout(nil, 80); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestHitTest(t *testing.T) {
	rows := gridLayout(itemsOf(widget.SizeNarrow, widget.SizeNarrow, widget.SizeWide), 96)
	cases := []struct {
		x, y int
		want string
	}{
		{0, 0, "a"},
		{31, 6, "a"},
		{32, 0, "b"},
		{70, 3, ""}, // unused span at the end of row 0
		{10, PanelHeight, "c"},
		{10, 3 * PanelHeight, ""},
		{-1, 0, ""},
	}
	for _, tc := range cases {
		if got := hitTest(rows, tc.x, tc.y); got != tc.want {
			t.Errorf("hitTest(%d,%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}
