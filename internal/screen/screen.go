package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/biascheck/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a short
// status on the right side of the header.
type StatusProvider interface {
	Status() string
}

// SessionChangedMsg is emitted by a screen after it applied an action that
// may have moved the assessment session to a different screen. The app
// model responds with a router.ReplaceScreenMsg for the matching screen.
type SessionChangedMsg struct{}

// SessionChanged is a tea.Cmd that emits SessionChangedMsg.
func SessionChanged() tea.Msg {
	return SessionChangedMsg{}
}
