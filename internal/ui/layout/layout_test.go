package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFrameHeader(t *testing.T) {
	h := Frame{Title: "Anchoring", Status: "2 / 6"}.header(100)
	for _, want := range []string{"Biascheck", "Anchoring", "2 / 6"} {
		if !strings.Contains(h, want) {
			t.Errorf("expected %q in header", want)
		}
	}
}

func TestFrameHeaderTruncatesLongTitle(t *testing.T) {
	title := strings.Repeat("Base rate neglect ", 8)
	h := Frame{Title: title, Status: "6 / 6"}.header(80)
	if !strings.Contains(h, "…") {
		t.Error("expected truncated title")
	}
	if !strings.Contains(h, "6 / 6") {
		t.Error("status must survive a long title")
	}
	if got := lipgloss.Height(h); got != 3 {
		t.Errorf("header height = %d, want 3", got)
	}
}

func TestFrameFooter(t *testing.T) {
	f := Frame{Hints: []KeyHint{{Key: "r", Description: "Retake"}}}.footer(80)
	if !strings.Contains(f, "Retake") {
		t.Error("expected hint description in footer")
	}
}

func TestFrameFooterDropsLeadingHintsWhenNarrow(t *testing.T) {
	var hints []KeyHint
	for _, d := range []string{"Move between options", "Select an option", "Adjust confidence", "Show the answer", "Next question", "Help"} {
		hints = append(hints, KeyHint{Key: "x", Description: d})
	}
	hints = append(hints, KeyHint{Key: "Ctrl+C", Description: "Quit"})

	f := Frame{Hints: hints}.footer(80)
	for _, want := range []string{"Show the answer", "Next question", "Help", "Quit"} {
		if !strings.Contains(f, want) {
			t.Errorf("expected trailing hint %q to survive", want)
		}
	}
	for _, gone := range []string{"Move between options", "Select an option", "Adjust confidence"} {
		if strings.Contains(f, gone) {
			t.Errorf("expected leading hint %q to be dropped", gone)
		}
	}
	if got := lipgloss.Height(f); got != 3 {
		t.Errorf("footer height = %d, want 3", got)
	}
}

func TestFrameRenderFillsHeight(t *testing.T) {
	var gotHeight int
	frame := Frame{}.Render(80, 30, func(_, h int) string {
		gotHeight = h
		return "body"
	})
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
	if gotHeight != 24 {
		t.Errorf("body height = %d, want 24", gotHeight)
	}
}

func TestFrameRenderTooSmall(t *testing.T) {
	called := false
	out := Frame{}.Render(40, 10, func(_, _ int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body must not render below minimum size")
	}
	if !strings.Contains(out, "Terminal too small") {
		t.Error("expected min size message")
	}
}
