package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/biascheck/internal/assessment"
	"github.com/abhisek/biascheck/internal/screen"
	"github.com/abhisek/biascheck/internal/screens/help"
	"github.com/abhisek/biascheck/internal/store"
	"github.com/abhisek/biascheck/internal/ui/components"
	"github.com/abhisek/biascheck/internal/ui/layout"
	"github.com/abhisek/biascheck/internal/ui/theme"
)

const (
	brierLegend = "Brier score: lower is better · 0.25 = always guessing 50% · 0.00 = perfect"
	saveTimeout = 5 * time.Second

	// noteLimit leaves room for the attempt prefix within store.MaxEntryLength.
	noteLimit = store.MaxEntryLength - 64
)

// noteSavedMsg reports the outcome of an asynchronous note save.
type noteSavedMsg struct {
	entry *store.Entry
	err   error
}

// ResultsScreen shows the calibration summary of a finished attempt and
// optionally records a free-text note.
type ResultsScreen struct {
	session *assessment.Session
	entries store.EntryRepo

	noting  bool
	input   components.TextInput
	saving  bool
	saved   *store.Entry
	saveErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. entries may be nil, which disables notes.
func New(sess *assessment.Session, entries store.EntryRepo) *ResultsScreen {
	return &ResultsScreen{session: sess, entries: entries}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.noting {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save note"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "r", Description: "Retake"}}
	if s.canNote() {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "Add note"})
	}
	hints = append(hints, layout.KeyHint{Key: "?", Description: "Help"})
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *ResultsScreen) canNote() bool {
	return s.entries != nil && s.saved == nil && !s.saving
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case noteSavedMsg:
		s.saving = false
		s.saved = msg.entry
		s.saveErr = msg.err
		return s, nil

	case tea.KeyPressMsg:
		if s.noting {
			return s.updateNote(msg)
		}
		switch msg.String() {
		case "r":
			if s.session.Reset() {
				return s, screen.SessionChanged
			}
		case "n":
			if s.canNote() {
				s.noting = true
				s.saveErr = nil
				s.input = components.NewTextInput("What surprised you?", noteLimit, 60)
				return s, s.input.Init()
			}
		case "?":
			return s, help.Open
		}
		return s, nil
	}

	if s.noting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) updateNote(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.noting = false
		return s, nil
	case "enter":
		text := s.input.Value()
		if text == "" {
			return s, nil
		}
		s.noting = false
		s.saving = true
		return s, s.saveNote(text)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) saveNote(text string) tea.Cmd {
	repo := s.entries
	if id := s.session.AttemptID(); id != "" {
		text = fmt.Sprintf("[attempt %s] %s", id, text)
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		e, err := repo.Create(ctx, text)
		return noteSavedMsg{entry: e, err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	res, ok := s.session.Results()
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Your calibration"))
	b.WriteString("\n\n")

	stats := []string{
		stat("Accuracy", fmt.Sprintf("%d%%", res.AccuracyPercent())),
		stat("Avg confidence", fmt.Sprintf("%d%%", res.AvgConfidence)),
		stat("Brier score", fmt.Sprintf("%.2f", res.Brier)),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats[0], "    ", stats[1], "    ", stats[2]))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(brierLegend))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(calibrationVerdict(res.Overconfidence())))
	b.WriteString("\n\n")

	questions := s.session.Questions()
	for i, a := range s.session.Answers() {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		label := a.QuestionID
		if i < questions.Count() {
			label = questions.Get(i).Category
		}
		b.WriteString(fmt.Sprintf("%s  %-28s %3d%%\n", mark, label, a.Confidence))
	}
	b.WriteString("\n")

	b.WriteString(s.noteView())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Attempt " + s.session.AttemptID()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *ResultsScreen) noteView() string {
	switch {
	case s.noting:
		return s.input.View() + "\n\n"
	case s.saving:
		return theme.Hint.Render("Saving note...") + "\n\n"
	case s.saveErr != nil:
		return theme.Incorrect.Render("Could not save note: "+s.saveErr.Error()) + "\n\n"
	case s.saved != nil:
		return theme.Correct.Render("Note saved.") + "\n\n"
	}
	return ""
}

func stat(label, value string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Stat.Render(value),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
}

// calibrationVerdict summarises the gap between confidence and accuracy.
func calibrationVerdict(over int) string {
	switch {
	case over > 10:
		return fmt.Sprintf("You were %d points more confident than accurate.", over)
	case over < -10:
		return fmt.Sprintf("You were %d points less confident than accurate.", -over)
	default:
		return "Your confidence roughly matched your accuracy."
	}
}
