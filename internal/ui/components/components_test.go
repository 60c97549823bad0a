package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSliderStartsUntouchedAtDefault(t *testing.T) {
	s := NewSlider(40)
	if s.Value() != SliderDefault {
		t.Errorf("expected value %d, got %d", SliderDefault, s.Value())
	}
	if s.Interacted() {
		t.Error("new slider should not report interaction")
	}
	if !strings.Contains(s.View(), "move slider to continue") {
		t.Error("expected untouched hint in view")
	}
}

func TestSliderArrowKeys(t *testing.T) {
	s := NewSlider(40)

	s, changed := s.Update(specialKey(tea.KeyRight))
	if !changed || s.Value() != 55 || !s.Interacted() {
		t.Errorf("after right: value=%d changed=%v touched=%v", s.Value(), changed, s.Interacted())
	}

	s, _ = s.Update(specialKey(tea.KeyLeft))
	s, _ = s.Update(specialKey(tea.KeyLeft))
	if s.Value() != 45 {
		t.Errorf("expected 45, got %d", s.Value())
	}
	if strings.Contains(s.View(), "move slider to continue") {
		t.Error("hint should disappear once the slider moved")
	}
}

func TestSliderClampsAtEnds(t *testing.T) {
	s := NewSlider(40)
	for i := 0; i < 30; i++ {
		s, _ = s.Update(specialKey(tea.KeyRight))
	}
	if s.Value() != SliderMax {
		t.Errorf("expected %d, got %d", SliderMax, s.Value())
	}
	for i := 0; i < 30; i++ {
		s, _ = s.Update(keyPress('h'))
	}
	if s.Value() != SliderMin {
		t.Errorf("expected %d, got %d", SliderMin, s.Value())
	}
}

func TestSliderIgnoresOtherKeys(t *testing.T) {
	s := NewSlider(40)
	s, changed := s.Update(keyPress('x'))
	if changed || s.Interacted() {
		t.Error("unrelated key should not count as interaction")
	}
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		v    int
		want string
	}{
		{0, "Wild guess"},
		{20, "Wild guess"},
		{25, "Uncertain"},
		{45, "Uncertain"},
		{50, "Somewhat sure"},
		{70, "Somewhat sure"},
		{75, "Confident"},
		{80, "Confident"},
		{95, "Confident"},
		{100, "Certain"},
	}
	for _, tt := range tests {
		if got := ConfidenceLabel(tt.v); got != tt.want {
			t.Errorf("ConfidenceLabel(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestConfidenceLabelBandsAcrossSteps(t *testing.T) {
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		want := confidenceLabels[min(v*4/100, 4)]
		if got := ConfidenceLabel(v); got != want {
			t.Errorf("ConfidenceLabel(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestSliderHidesLabelUntilTouched(t *testing.T) {
	s := NewSlider(40)
	if strings.Contains(s.View(), "Somewhat sure") {
		t.Error("label must be hidden before the slider is moved")
	}
	if !strings.Contains(s.View(), untouchedLabel) {
		t.Error("expected placeholder label before interaction")
	}

	s, _ = s.Update(specialKey(tea.KeyRight))
	if !strings.Contains(s.View(), "Somewhat sure") {
		t.Error("expected label once the slider moved to 55")
	}
}

func testChoices() []Choice {
	return []Choice{{ID: "a", Text: "Alpha"}, {ID: "b", Text: "Bravo"}, {ID: "c", Text: "Charlie"}}
}

func TestOptionListCursorAndSpace(t *testing.T) {
	o := NewOptionList(testChoices())

	o, picked := o.Update(specialKey(tea.KeyDown))
	if picked != "" || o.Cursor != 1 {
		t.Fatalf("down: cursor=%d picked=%q", o.Cursor, picked)
	}
	o, picked = o.Update(specialKey(tea.KeySpace))
	if picked != "b" {
		t.Errorf("space: expected b, got %q", picked)
	}

	// Cursor stays within bounds.
	o, _ = o.Update(specialKey(tea.KeyUp))
	o, _ = o.Update(specialKey(tea.KeyUp))
	if o.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", o.Cursor)
	}
}

func TestOptionListDigits(t *testing.T) {
	o := NewOptionList(testChoices())

	o, picked := o.Update(keyPress('3'))
	if picked != "c" || o.Cursor != 2 {
		t.Errorf("3: cursor=%d picked=%q", o.Cursor, picked)
	}
	_, picked = o.Update(keyPress('9'))
	if picked != "" {
		t.Errorf("out-of-range digit should pick nothing, got %q", picked)
	}
}

func TestOptionListRevealMarks(t *testing.T) {
	o := NewOptionList(testChoices())
	view := o.View("c", "a", true)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("expected correct and wrong marks in revealed view:\n%s", view)
	}

	view = o.View("a", "a", false)
	if strings.Contains(view, "✓") {
		t.Error("correct answer must not be marked before reveal")
	}
}

func TestButtonRespondsToKeyWhenActive(t *testing.T) {
	pressed := false
	b := NewButton("Show Answer", "s", true, func() tea.Cmd {
		pressed = true
		return nil
	})
	b.Update(keyPress('s'))
	if !pressed {
		t.Error("expected active button to fire")
	}

	pressed = false
	b.Active = false
	b.Update(keyPress('s'))
	if pressed {
		t.Error("inactive button must not fire")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "One"},
		{Label: "Two", Disabled: true},
		{Label: "Three"},
	})
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("expected selection to skip disabled item, got %d", m.Selected)
	}
}

func TestProgressBarClamps(t *testing.T) {
	p := NewProgressBar("", 1.7, true, 30)
	if p.Percent != 1 {
		t.Errorf("expected percent clamped to 1, got %v", p.Percent)
	}
	if !strings.Contains(p.View(), "100%") {
		t.Error("expected 100% label")
	}
}
