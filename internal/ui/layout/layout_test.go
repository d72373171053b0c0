package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_Score(t *testing.T) {
	h := RenderHeader("Lesson", Score{Correct: 3, Served: 4, Streak: 2}, 90)
	if !strings.Contains(h, "Lesson") || !strings.Contains(h, "3/4") || !strings.Contains(h, "2 in a row") {
		t.Errorf("header missing parts:\n%s", h)
	}

	h = RenderHeader("Home", Score{}, 90)
	if strings.Contains(h, "✓") {
		t.Error("empty score should not be rendered")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Back"}}, 80)
	for _, want := range []string{"Enter", "Submit", "Esc", "Back"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}
