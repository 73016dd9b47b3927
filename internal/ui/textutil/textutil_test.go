package textutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Members", 10, "Members"},
		{"exact", "Members", 7, "Members"},
		{"cut", "Subscriptions", 6, "Subsc…"},
		{"zero", "abc", 0, ""},
		{"wide runes", "会員一覧です", 5, "会員…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if VisualWidth(got) > tt.width {
				t.Errorf("Truncate(%q, %d) width %d exceeds limit", tt.in, tt.width, VisualWidth(got))
			}
		})
	}
}

func TestFitBlock_ClipsLinesAndWidth(t *testing.T) {
	got := FitBlock("one\ntwo\nthree\nfour", 10, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("FitBlock: expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != "two…" {
		t.Errorf("FitBlock: expected ellipsis on last kept line, got %q", lines[1])
	}

	got = FitBlock("a long body line", 6, 3)
	if VisualWidth(got) > 6 {
		t.Errorf("FitBlock: width %d exceeds 6: %q", VisualWidth(got), got)
	}
}

func TestFitBlock_FullWidthLastLine(t *testing.T) {
	got := FitBlock("abcdef\nxyz", 6, 1)
	if VisualWidth(got) > 6 || !strings.HasSuffix(got, TruncateEllipsis) {
		t.Errorf("FitBlock: got %q", got)
	}
}

func TestFitBlock_Degenerate(t *testing.T) {
	if FitBlock("abc", 0, 3) != "" || FitBlock("abc", 3, 0) != "" {
		t.Error("FitBlock with zero size should be empty")
	}
}
