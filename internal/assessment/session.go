package assessment

import (
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/biascheck/internal/bank"
	"github.com/abhisek/biascheck/internal/scoring"
)

// Questions is the read-only view of a question bank the session needs.
type Questions interface {
	Get(index int) bank.Question
	Count() int
}

// Session drives one respondent through intro, assessment and results.
// Every action is synchronous. Actions that are not permitted in the
// current state are ignored and report false.
//
// A Session is not safe for concurrent use.
type Session struct {
	questions Questions
	state     State
	newID     func() string
}

// New creates a session on the intro screen.
func New(questions Questions) *Session {
	return &Session{
		questions: questions,
		state:     Intro{},
		newID:     uuid.NewString,
	}
}

// State returns the current tagged state.
func (s *Session) State() State {
	return s.state
}

// Screen returns the screen for the current state.
func (s *Session) Screen() Screen {
	return s.state.Screen()
}

// Questions returns the bank the session draws from.
func (s *Session) Questions() Questions {
	return s.questions
}

// Start moves from intro to the first question.
func (s *Session) Start() bool {
	if _, ok := s.state.(Intro); !ok {
		return false
	}
	if s.questions.Count() == 0 {
		return false
	}
	s.state = &InProgress{attemptID: s.newID()}
	return true
}

// Reset returns from results to a pristine intro state.
func (s *Session) Reset() bool {
	if _, ok := s.state.(*Results); !ok {
		return false
	}
	s.state = Intro{}
	return true
}

// AttemptID returns the identifier of the current attempt, or "" on intro.
func (s *Session) AttemptID() string {
	switch st := s.state.(type) {
	case *InProgress:
		return st.attemptID
	case *Results:
		return st.attemptID
	}
	return ""
}

// Index returns the 0-based index of the current question. It is 0 outside
// the assessment screen.
func (s *Session) Index() int {
	if st, ok := s.state.(*InProgress); ok {
		return st.index
	}
	return 0
}

// Current returns the question being answered.
func (s *Session) Current() (bank.Question, bool) {
	st, ok := s.state.(*InProgress)
	if !ok {
		return bank.Question{}, false
	}
	return s.questions.Get(st.index), true
}

// IsLastQuestion reports whether the current question is the final one.
func (s *Session) IsLastQuestion() bool {
	st, ok := s.state.(*InProgress)
	return ok && st.index == s.questions.Count()-1
}

// Progress returns the display progress in [0, 1]. The current question
// counts as started.
func (s *Session) Progress() float64 {
	st, ok := s.state.(*InProgress)
	if !ok {
		if _, done := s.state.(*Results); done {
			return 1
		}
		return 0
	}
	return math.Min(float64(st.index+1)/float64(s.questions.Count()), 1)
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() []scoring.Answer {
	var src []scoring.Answer
	switch st := s.state.(type) {
	case *InProgress:
		src = st.answers
	case *Results:
		src = st.answers
	}
	if len(src) == 0 {
		return nil
	}
	return append([]scoring.Answer(nil), src...)
}

// Results returns the summary of a finished attempt.
func (s *Session) Results() (scoring.Results, bool) {
	st, ok := s.state.(*Results)
	if !ok {
		return scoring.Results{}, false
	}
	return st.summary, true
}
