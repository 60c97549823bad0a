package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/ui/theme"
)

const (
	SliderMin     = 0
	SliderMax     = 100
	SliderStep    = 5
	SliderDefault = 50
)

// Slider is a 0–100 confidence slider. It starts at SliderDefault and
// reports Interacted only after the user has moved it.
type Slider struct {
	value   int
	touched bool
	Width   int
}

// NewSlider returns an untouched slider at the default position.
func NewSlider(width int) Slider {
	return Slider{value: SliderDefault, Width: width}
}

// Value returns the current position in percent.
func (s Slider) Value() int { return s.value }

// Interacted reports whether the user has moved the slider.
func (s Slider) Interacted() bool { return s.touched }

// Update handles ←/→ (and h/l). Any arrow press counts as interaction,
// even at the ends of the track.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, false
	}

	switch kmsg.String() {
	case "left", "h":
		s.value = max(SliderMin, s.value-SliderStep)
	case "right", "l":
		s.value = min(SliderMax, s.value+SliderStep)
	default:
		return s, false
	}
	s.touched = true
	return s, true
}

// confidenceLabels split the 0–100 range into equal bands; 100 alone is "Certain".
var confidenceLabels = []string{"Wild guess", "Uncertain", "Somewhat sure", "Confident", "Certain"}

// untouchedLabel stands in for the label until the slider has been moved.
const untouchedLabel = "—"

// ConfidenceLabel describes a confidence level in words.
func ConfidenceLabel(v int) string {
	v = min(max(v, SliderMin), SliderMax)
	i := v * (len(confidenceLabels) - 1) / SliderMax
	return confidenceLabels[min(i, len(confidenceLabels)-1)]
}

// View renders the track, the knob and the current reading.
func (s Slider) View() string {
	track := s.Width
	if track < 10 {
		track = 10
	}
	pos := s.value * (track - 1) / SliderMax

	bar := theme.SliderFill.Render(strings.Repeat("━", pos)) +
		theme.SliderKnob.Render("●") +
		theme.SliderTrack.Render(strings.Repeat("─", track-1-pos))

	reading := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%3d%%", s.value))
	text := untouchedLabel
	if s.touched {
		text = ConfidenceLabel(s.value)
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)

	out := bar + "  " + reading + "  " + label
	if !s.touched {
		out += "\n" + theme.Hint.Render("(move slider to continue)")
	}
	return out
}
