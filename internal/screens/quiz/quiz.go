package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/assessment"
	"github.com/abhisek/biascheck/internal/bank"
	"github.com/abhisek/biascheck/internal/screen"
	"github.com/abhisek/biascheck/internal/screens/help"
	"github.com/abhisek/biascheck/internal/ui/components"
	"github.com/abhisek/biascheck/internal/ui/layout"
	"github.com/abhisek/biascheck/internal/ui/theme"
)

const sliderWidth = 40

// QuizScreen shows the current question of an in-progress attempt and
// feeds answer, confidence and reveal actions into the session.
type QuizScreen struct {
	session *assessment.Session

	// index is the question the widgets were built for.
	index   int
	options components.OptionList
	slider  components.Slider
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen bound to sess.
func New(sess *assessment.Session) *QuizScreen {
	s := &QuizScreen{session: sess}
	s.rebuild()
	return s
}

// rebuild resets the widgets for the session's current question. The
// slider is recreated so no confidence carries over between questions.
func (s *QuizScreen) rebuild() {
	s.index = s.session.Index()
	s.slider = components.NewSlider(sliderWidth)

	q, ok := s.session.Current()
	if !ok {
		s.options = components.NewOptionList(nil)
		return
	}
	choices := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = components.Choice{ID: o.ID, Text: o.Text}
	}
	s.options = components.NewOptionList(choices)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	q, ok := s.session.Current()
	if !ok {
		return "Assessment"
	}
	return q.Category
}

func (s *QuizScreen) Status() string {
	n := s.session.Questions().Count()
	return fmt.Sprintf("%d / %d", min(s.session.Index()+1, n), n)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-9", Description: "Select"},
		{Key: "←→", Description: "Confidence"},
	}
	if s.session.CanAdvance() {
		if !s.session.Revealed() {
			hints = append(hints, layout.KeyHint{Key: "s", Description: "Show answer"})
		}
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: s.nextLabel()})
	}
	hints = append(hints, layout.KeyHint{Key: "?", Description: "Help"})
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *QuizScreen) nextLabel() string {
	if s.session.IsLastQuestion() {
		return "See Results"
	}
	return "Next Question"
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.session.Screen() != assessment.ScreenAssessment {
		return s, nil
	}
	if s.session.Index() != s.index {
		s.rebuild()
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "right", "h", "l":
		var moved bool
		s.slider, moved = s.slider.Update(kmsg)
		if moved {
			s.session.SetConfidence(s.slider)
		}
		return s, nil

	case "s":
		s.session.RevealExplanation()
		return s, nil

	case "?":
		return s, help.Open

	case "enter":
		if !s.session.RecordAndAdvance() {
			return s, nil
		}
		if s.session.Screen() == assessment.ScreenAssessment {
			s.rebuild()
		}
		return s, screen.SessionChanged
	}

	var picked string
	s.options, picked = s.options.Update(kmsg)
	if picked != "" {
		s.session.SelectOption(picked)
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	cw := min(width-4, 76)
	selected, _ := s.session.Selection()
	revealed := s.session.Revealed()

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.session.Index()+1, s.session.Questions().Count()),
		s.session.Progress(), false, cw)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Category.Render(strings.ToUpper(q.Category)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.options.View(selected, q.CorrectID, revealed))
	b.WriteString("\n")

	if revealed {
		b.WriteString(theme.Explanation.Width(cw).Render(revealHeading(q, selected) + "\n" + q.Explanation))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Render("How confident are you?"))
	b.WriteString("\n")
	b.WriteString(s.slider.View())
	b.WriteString("\n\n")

	canAdvance := s.session.CanAdvance()
	next := components.NewButton(s.nextLabel(), "enter", canAdvance, nil)
	if revealed {
		b.WriteString(next.View())
	} else {
		reveal := components.NewButton("Show Answer", "s", canAdvance, nil)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, reveal.View(), "  ", next.View()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func revealHeading(q bank.Question, selected string) string {
	if selected == q.CorrectID {
		return theme.Correct.Render("Correct.")
	}
	return theme.Incorrect.Render("Not quite.")
}
