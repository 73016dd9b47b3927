package widget

import "errors"

var (
	// ErrDuplicateID is returned when two configs share an id.
	ErrDuplicateID = errors.New("duplicate widget id")
	// ErrEmptyID is returned for a config with no id.
	ErrEmptyID = errors.New("empty widget id")
	// ErrOrderGap is returned when orders are not exactly 1..N.
	ErrOrderGap = errors.New("widget orders not dense")
	// ErrInvalidSize is returned for a size outside the enumerated classes.
	ErrInvalidSize = errors.New("invalid widget size")
)
