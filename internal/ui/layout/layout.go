package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/biascheck/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "  Biascheck"

// hintGap separates footer hints.
const hintGap = "   "

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nThe quiz needs at least %d x %d.\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Frame is the chrome drawn around the active screen.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

// Render draws the frame at width x height. body is called with the space
// left between header and footer.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return RenderMinSizeMessage(width, height)
	}

	header := f.header(width)
	footer := f.footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))

	return header + "\n" + content + "\n" + footer
}

// header centres the title between the brand and the status. A title that
// would collide with either side is truncated.
func (f Frame) header(width int) string {
	inner := max(width-4, 0)
	left := brandStyle.Render(brand)
	right := statusStyle.Render(f.Status)

	room := max(inner-lipgloss.Width(left)-lipgloss.Width(right)-2, 0)
	center := titleStyle.Render(ansi.Truncate(f.Title, room, "…"))

	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return barStyle.Width(width).Render(
		left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// footer lists hints in order. Screens put navigation hints first and actions
// last, so on overflow the leading hints are dropped. One hint always shows.
func (f Frame) footer(width int) string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	for len(parts) > 1 && lineWidth(parts) > max(width-4, 0) {
		parts = parts[1:]
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, hintGap))
}

func lineWidth(parts []string) int {
	return lipgloss.Width("  " + strings.Join(parts, hintGap))
}
