package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/assessment"
	"github.com/abhisek/biascheck/internal/screen"
	"github.com/abhisek/biascheck/internal/screens/help"
	"github.com/abhisek/biascheck/internal/ui/components"
	"github.com/abhisek/biascheck/internal/ui/layout"
	"github.com/abhisek/biascheck/internal/ui/theme"
)

const secondsPerQuestion = 50

const blurb = `Each question tests a common reasoning trap.
Pick an answer, then say how sure you are.
At the end you'll see how well your confidence matched reality.`

// IntroScreen is the landing screen of an attempt.
type IntroScreen struct {
	session *assessment.Session
	round   string
	menu    components.Menu
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen for sess. round is shown as the subtitle.
func New(sess *assessment.Session, round string) *IntroScreen {
	s := &IntroScreen{session: sess, round: round}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Begin Assessment", Action: s.begin, Disabled: sess.Questions().Count() == 0},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *IntroScreen) begin() tea.Cmd {
	if !s.session.Start() {
		return nil
	}
	return screen.SessionChanged
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Cognitive Bias Check"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "?", Description: "Help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "?" {
		return s, help.Open
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("How calibrated are you?"))
	if s.round != "" {
		sections = append(sections, theme.Subtitle.Render(s.round))
	}
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(blurb))
	sections = append(sections, "")

	n := s.session.Questions().Count()
	if n == 0 {
		sections = append(sections, theme.Incorrect.Render("This question bank is empty."))
	} else {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d questions · ~%d minutes", n, estimateMinutes(n))))
	}
	sections = append(sections, "", s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// estimateMinutes allows roughly fifty seconds per question.
func estimateMinutes(n int) int {
	return max(1, (n*secondsPerQuestion+30)/60)
}
