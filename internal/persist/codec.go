package persist

import (
	"encoding/json"
	"fmt"

	"widgetdeck/internal/widget"
)

// Encode serializes l as a JSON array in ascending Order.
func Encode(l widget.Layout) ([]byte, error) {
	b, err := json.Marshal(l.Sorted())
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return b, nil
}

// Decode parses a persisted record. Positive orders with gaps are renumbered
// densely in their stored sequence. An order below 1 is an error, as are
// missing ids, unknown sizes and duplicate ids.
func Decode(data []byte) (widget.Layout, error) {
	var l widget.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("decode layout: not an array")
	}
	for _, c := range l {
		if c.Order < 1 {
			return nil, fmt.Errorf("decode layout: %w: order %d on %q", widget.ErrOrderGap, c.Order, c.ID)
		}
	}
	l = widget.Normalize(l)
	if err := widget.Validate(l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}
