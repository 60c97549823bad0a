package assessment

import "github.com/abhisek/biascheck/internal/scoring"

// Screen identifies which top-level screen a session is on.
type Screen int

const (
	ScreenIntro      Screen = iota // Before the assessment starts
	ScreenAssessment               // Answering questions
	ScreenResults                  // Showing the score
)

func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenAssessment:
		return "assessment"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is the tagged session state: one of Intro, *InProgress or *Results.
type State interface {
	Screen() Screen
}

// Intro is the state before an attempt starts.
type Intro struct{}

func (Intro) Screen() Screen { return ScreenIntro }

// InProgress is the state while questions are being answered.
type InProgress struct {
	attemptID string
	index     int

	// selection is the chosen option ID. Option IDs are never empty,
	// so "" means nothing has been selected.
	selection  string
	confidence *int
	revealed   bool
	answers    []scoring.Answer
}

func (*InProgress) Screen() Screen { return ScreenAssessment }

// Results is the terminal state of an attempt.
type Results struct {
	attemptID string
	answers   []scoring.Answer
	summary   scoring.Results
}

func (*Results) Screen() Screen { return ScreenResults }
