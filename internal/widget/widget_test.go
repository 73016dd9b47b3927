package widget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abc() Layout {
	return Layout{
		{ID: "a", Title: "A", Visible: true, Order: 1, Size: SizeNarrow},
		{ID: "b", Title: "B", Visible: true, Order: 2, Size: SizeMedium},
		{ID: "c", Title: "C", Visible: false, Order: 3, Size: SizeWide},
	}
}

func TestSize_Span(t *testing.T) {
	assert.Equal(t, 4, SizeNarrow.Span())
	assert.Equal(t, 6, SizeMedium.Span())
	assert.Equal(t, GridColumns, SizeWide.Span())
	assert.Equal(t, 6, Size("huge").Span())
}

func TestSize_NextCycles(t *testing.T) {
	assert.Equal(t, SizeMedium, SizeNarrow.Next())
	assert.Equal(t, SizeWide, SizeMedium.Next())
	assert.Equal(t, SizeNarrow, SizeWide.Next())
	assert.Equal(t, SizeNarrow, Size("").Next())
}

func TestLayout_CloneIsIndependent(t *testing.T) {
	l := abc()
	c := l.Clone()
	c[0].Visible = false
	assert.True(t, l[0].Visible, "clone must not alias the original")
	assert.Nil(t, Layout(nil).Clone())
}

func TestLayout_SortedDoesNotMutate(t *testing.T) {
	l := Layout{
		{ID: "x", Order: 3, Size: SizeWide},
		{ID: "y", Order: 1, Size: SizeWide},
		{ID: "z", Order: 2, Size: SizeWide},
	}
	assert.Equal(t, []string{"y", "z", "x"}, l.Sorted().IDs())
	assert.Equal(t, []string{"x", "y", "z"}, l.IDs())
}

func TestNormalize_ClosesGaps(t *testing.T) {
	l := Layout{
		{ID: "x", Order: 7, Size: SizeWide},
		{ID: "y", Order: 2, Size: SizeWide},
	}
	got := Normalize(l)
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[0].ID)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, "x", got[1].ID)
	assert.Equal(t, 2, got[1].Order)
	assert.NoError(t, Validate(got))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Layout) Layout
		want   error
	}{
		{"valid", func(l Layout) Layout { return l }, nil},
		{"empty layout", func(Layout) Layout { return Layout{} }, nil},
		{"duplicate id", func(l Layout) Layout { l[2].ID = "a"; return l }, ErrDuplicateID},
		{"empty id", func(l Layout) Layout { l[1].ID = ""; return l }, ErrEmptyID},
		{"bad size", func(l Layout) Layout { l[0].Size = "tiny"; return l }, ErrInvalidSize},
		{"order gap", func(l Layout) Layout { l[2].Order = 5; return l }, ErrOrderGap},
		{"order repeat", func(l Layout) Layout { l[2].Order = 2; return l }, ErrOrderGap},
		{"order zero", func(l Layout) Layout { l[0].Order = 0; return l }, ErrOrderGap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(abc()))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "Validate() = %v, want %v", err, tt.want)
		})
	}
}

func TestLayout_Equal(t *testing.T) {
	assert.True(t, abc().Equal(abc()))
	other := abc()
	other[1].Size = SizeWide
	assert.False(t, abc().Equal(other))
	assert.False(t, abc().Equal(abc()[:2]))
}
