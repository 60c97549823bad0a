package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/biascheck/internal/assessment"
	"github.com/abhisek/biascheck/internal/bank"
	"github.com/abhisek/biascheck/internal/router"
	"github.com/abhisek/biascheck/internal/screen"
	"github.com/abhisek/biascheck/internal/screens/intro"
	"github.com/abhisek/biascheck/internal/screens/quiz"
	"github.com/abhisek/biascheck/internal/screens/results"
	"github.com/abhisek/biascheck/internal/store"
	"github.com/abhisek/biascheck/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Bank *bank.Bank

	// Entries stores notes from the results screen. Nil disables notes.
	Entries store.EntryRepo
}

// AppModel is the root Bubble Tea model. It owns the single assessment
// session and keeps the active screen in step with it.
type AppModel struct {
	router  *router.Router
	session *assessment.Session
	opts    Options
	shown   assessment.Screen
	width   int
	height  int
}

// newAppModel creates a new AppModel showing the intro screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		session: assessment.New(opts.Bank),
		opts:    opts,
	}
	m.shown = m.session.Screen()
	m.router = router.New(m.screenFor(m.shown))
	return m
}

// screenFor builds the screen that renders the given session screen.
func (m AppModel) screenFor(s assessment.Screen) screen.Screen {
	switch s {
	case assessment.ScreenAssessment:
		return quiz.New(m.session)
	case assessment.ScreenResults:
		return results.New(m.session, m.opts.Entries)
	default:
		return intro.New(m.session, m.opts.Bank.Round())
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case screen.SessionChangedMsg:
		next := m.session.Screen()
		if next == m.shown {
			return m, nil
		}
		m.shown = next
		s := m.screenFor(next)
		return m, func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	frame := layout.Frame{
		Hints: []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}},
	}
	if active := m.router.Active(); active != nil {
		frame.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			frame.Status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			frame.Hints = hp.KeyHints()
		}
	}
	return frame.Render(m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bank == nil {
		return fmt.Errorf("run tui: no question bank")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
