package assessment

import (
	"github.com/abhisek/biascheck/internal/scoring"
)

// Selection returns the in-progress option selection.
func (s *Session) Selection() (string, bool) {
	st, ok := s.state.(*InProgress)
	if !ok || st.selection == "" {
		return "", false
	}
	return st.selection, true
}

// Confidence returns the in-progress confidence rating. It is unset until
// the confidence input has been interacted with.
func (s *Session) Confidence() (int, bool) {
	st, ok := s.state.(*InProgress)
	if !ok || st.confidence == nil {
		return 0, false
	}
	return *st.confidence, true
}

// Revealed reports whether the explanation for the current question is shown.
func (s *Session) Revealed() bool {
	st, ok := s.state.(*InProgress)
	return ok && st.revealed
}

// CanAdvance reports whether both a selection and a confidence rating exist.
func (s *Session) CanAdvance() bool {
	st, ok := s.state.(*InProgress)
	return ok && canAdvance(st)
}

func canAdvance(st *InProgress) bool {
	return st.selection != "" && st.confidence != nil
}

// SelectOption replaces the current selection. Selection is frozen once the
// explanation is revealed, and unknown option IDs are ignored.
func (s *Session) SelectOption(optionID string) bool {
	st, ok := s.state.(*InProgress)
	if !ok || st.revealed {
		return false
	}
	if !s.questions.Get(st.index).HasOption(optionID) {
		return false
	}
	st.selection = optionID
	return true
}

// SetConfidence records the reading of a confidence input. Readings the user
// never interacted with, and out-of-range values, are ignored.
func (s *Session) SetConfidence(in ConfidenceInput) bool {
	st, ok := s.state.(*InProgress)
	if !ok || !in.Interacted() {
		return false
	}
	v := in.Value()
	if !ValidConfidence(v) {
		return false
	}
	st.confidence = &v
	return true
}

// RevealExplanation shows the explanation once the question can be advanced.
// It neither records an answer nor advances.
func (s *Session) RevealExplanation() bool {
	st, ok := s.state.(*InProgress)
	if !ok || !canAdvance(st) {
		return false
	}
	st.revealed = true
	return true
}

// RecordAndAdvance commits the answer for the current question. After the
// final question the session moves to results; otherwise the next question
// starts with no selection, no confidence and the explanation hidden.
func (s *Session) RecordAndAdvance() bool {
	st, ok := s.state.(*InProgress)
	if !ok || !canAdvance(st) {
		return false
	}

	q := s.questions.Get(st.index)
	answers := append(st.answers, scoring.Answer{
		QuestionID: q.ID,
		SelectedID: st.selection,
		Confidence: *st.confidence,
		Correct:    st.selection == q.CorrectID,
	})

	if st.index == s.questions.Count()-1 {
		// answers is non-empty here, so Compute cannot fail.
		summary, _ := scoring.Compute(answers)
		s.state = &Results{
			attemptID: st.attemptID,
			answers:   answers,
			summary:   summary,
		}
		return true
	}

	s.state = &InProgress{
		attemptID: st.attemptID,
		index:     st.index + 1,
		answers:   answers,
	}
	return true
}
