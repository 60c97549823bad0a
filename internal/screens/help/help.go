package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/router"
	"github.com/abhisek/biascheck/internal/screen"
	"github.com/abhisek/biascheck/internal/ui/layout"
	"github.com/abhisek/biascheck/internal/ui/theme"
)

var keys = []layout.KeyHint{
	{Key: "↑ ↓", Description: "Move between options"},
	{Key: "Space, 1-9", Description: "Choose an option"},
	{Key: "← →", Description: "Adjust confidence in steps of 5"},
	{Key: "s", Description: "Show the answer and explanation"},
	{Key: "Enter", Description: "Record the answer and continue"},
	{Key: "r", Description: "Retake from the results screen"},
	{Key: "n", Description: "Save a note from the results screen"},
	{Key: "Ctrl+C", Description: "Quit"},
}

const brierText = `The Brier score is the mean of (confidence - outcome)², where outcome
is 1 for a correct answer and 0 otherwise. Always answering 50% scores
0.25; a perfect, fully confident run scores 0.00.`

// HelpScreen lists the key bindings and explains the scoring. It is pushed
// on top of the current screen; the app pops it on Esc.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

func New() *HelpScreen {
	return &HelpScreen{}
}

// Open is a tea.Cmd that pushes a help screen.
func Open() tea.Msg {
	return router.PushScreenMsg{Screen: New()}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "?", "q", "enter":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range keys {
		b.WriteString(keyStyle.Render(k.Key) + descStyle.Render(k.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Scoring"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(brierText))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
