package ui

import (
	"widgetdeck/internal/layout"
	"widgetdeck/internal/widget"
)

// cell is a panel's position on the dashboard grid, in terminal cells
// relative to the top-left of the grid.
type cell struct {
	ID   string
	Item layout.Item[Slot]
	X, Y int
	W, H int
}

func (c cell) contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

// gridLayout packs items left to right into rows of widget.GridColumns spans.
// A panel that does not fit the remaining span of a row starts a new row.
func gridLayout(items []layout.Item[Slot], width int) [][]cell {
	colW := width / widget.GridColumns
	if colW < 1 {
		colW = 1
	}

	var rows [][]cell
	var row []cell
	used := 0
	for _, it := range items {
		span := it.Config.Size.Span()
		if used+span > widget.GridColumns && len(row) > 0 {
			rows = append(rows, row)
			row = nil
			used = 0
		}
		row = append(row, cell{
			ID:   it.Config.ID,
			Item: it,
			X:    used * colW,
			Y:    len(rows) * PanelHeight,
			W:    span * colW,
			H:    PanelHeight,
		})
		used += span
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// hitTest returns the id of the panel covering (x, y), or "".
func hitTest(rows [][]cell, x, y int) string {
	for _, row := range rows {
		for _, c := range row {
			if c.contains(x, y) {
				return c.ID
			}
		}
	}
	return ""
}
