package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/biascheck/internal/bank"
)

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	opts := []bank.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"}}
	b, err := bank.New("Test", []bank.Question{
		{ID: "q1", Category: "Anchoring", Prompt: "first", Options: opts, CorrectID: "a", Explanation: "e1"},
		{ID: "q2", Category: "Base Rate", Prompt: "second", Options: opts, CorrectID: "b", Explanation: "e2"},
	})
	require.NoError(t, err)
	return b
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := New(testBank(t))
	require.True(t, s.Start())
	return s
}

func answer(t *testing.T, s *Session, option string, confidence int) {
	t.Helper()
	require.True(t, s.SelectOption(option))
	require.True(t, s.SetConfidence(Rated(confidence)))
	require.True(t, s.RecordAndAdvance())
}

func TestNew_StartsOnIntro(t *testing.T) {
	s := New(testBank(t))
	assert.Equal(t, ScreenIntro, s.Screen())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
	assert.Empty(t, s.AttemptID())
	assert.False(t, s.CanAdvance())
}

func TestActionsOnIntroAreNoops(t *testing.T) {
	s := New(testBank(t))
	assert.False(t, s.SelectOption("a"))
	assert.False(t, s.SetConfidence(Rated(80)))
	assert.False(t, s.RevealExplanation())
	assert.False(t, s.RecordAndAdvance())
	assert.False(t, s.Reset())
	assert.Equal(t, ScreenIntro, s.Screen())
}

func TestStart(t *testing.T) {
	s := startedSession(t)
	assert.Equal(t, ScreenAssessment, s.Screen())
	assert.NotEmpty(t, s.AttemptID())

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)

	// Start is only valid from intro.
	assert.False(t, s.Start())
}

func TestStart_EmptyBankIsNoop(t *testing.T) {
	s := New(emptyQuestions{})
	assert.False(t, s.Start())
	assert.Equal(t, ScreenIntro, s.Screen())
}

type emptyQuestions struct{}

func (emptyQuestions) Get(int) bank.Question { panic("no questions") }
func (emptyQuestions) Count() int            { return 0 }

func TestCanAdvance_RequiresSelectionAndConfidence(t *testing.T) {
	s := startedSession(t)
	assert.False(t, s.CanAdvance())

	require.True(t, s.SelectOption("a"))
	assert.False(t, s.CanAdvance(), "selection alone is not enough")

	require.True(t, s.SetConfidence(Rated(70)))
	assert.True(t, s.CanAdvance())
}

func TestCanAdvance_ConfidenceBeforeSelection(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.SetConfidence(Rated(30)))
	assert.False(t, s.CanAdvance())
	require.True(t, s.SelectOption("b"))
	assert.True(t, s.CanAdvance())
}

func TestSetConfidence_UntouchedDefaultDoesNotCount(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.SelectOption("a"))

	assert.False(t, s.SetConfidence(Reading{Rating: DefaultConfidence}))
	_, ok := s.Confidence()
	assert.False(t, ok)
	assert.False(t, s.CanAdvance())
	assert.False(t, s.RecordAndAdvance())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
}

func TestSetConfidence_RejectsInvalidValues(t *testing.T) {
	s := startedSession(t)
	for _, v := range []int{-5, 101, 105, 42, 3} {
		assert.False(t, s.SetConfidence(Rated(v)), "value %d", v)
	}
	_, ok := s.Confidence()
	assert.False(t, ok)

	for _, v := range []int{0, 5, 50, 95, 100} {
		assert.True(t, s.SetConfidence(Rated(v)), "value %d", v)
		got, ok := s.Confidence()
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestSelectOption_ReplacesSelection(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.SelectOption("a"))
	require.True(t, s.SelectOption("c"))
	sel, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, "c", sel)
}

func TestSelectOption_UnknownOptionIgnored(t *testing.T) {
	s := startedSession(t)
	assert.False(t, s.SelectOption("z"))
	assert.False(t, s.SelectOption(""))
	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestRevealExplanation_RequiresCanAdvance(t *testing.T) {
	s := startedSession(t)
	assert.False(t, s.RevealExplanation())

	require.True(t, s.SelectOption("a"))
	assert.False(t, s.RevealExplanation())
	assert.False(t, s.Revealed())

	require.True(t, s.SetConfidence(Rated(90)))
	assert.True(t, s.RevealExplanation())
	assert.True(t, s.Revealed())

	// Revealing does not record or advance.
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
}

func TestRevealExplanation_FreezesSelection(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.SelectOption("b"))
	require.True(t, s.SetConfidence(Rated(60)))
	require.True(t, s.RevealExplanation())

	assert.False(t, s.SelectOption("a"))
	sel, _ := s.Selection()
	assert.Equal(t, "b", sel)

	// Confidence is still adjustable after reveal.
	assert.True(t, s.SetConfidence(Rated(20)))

	require.True(t, s.RecordAndAdvance())
	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, "b", answers[0].SelectedID)
	assert.Equal(t, 20, answers[0].Confidence)
	assert.False(t, answers[0].Correct)
}

func TestRecordAndAdvance_ResetsPerQuestionState(t *testing.T) {
	s := startedSession(t)
	require.True(t, s.SelectOption("a"))
	require.True(t, s.SetConfidence(Rated(80)))
	require.True(t, s.RevealExplanation())
	require.True(t, s.RecordAndAdvance())

	assert.Equal(t, ScreenAssessment, s.Screen())
	assert.Equal(t, 1, s.Index())
	_, hasSel := s.Selection()
	_, hasConf := s.Confidence()
	assert.False(t, hasSel)
	assert.False(t, hasConf)
	assert.False(t, s.Revealed())
	assert.False(t, s.CanAdvance())
	assert.Len(t, s.Answers(), s.Index())
}

func TestTwoQuestionScenario(t *testing.T) {
	s := startedSession(t)
	attempt := s.AttemptID()

	answer(t, s, "a", 80)
	assert.Len(t, s.Answers(), 1)
	assert.True(t, s.IsLastQuestion())

	answer(t, s, "c", 40)
	assert.Equal(t, ScreenResults, s.Screen())
	assert.Equal(t, attempt, s.AttemptID())

	res, ok := s.Results()
	require.True(t, ok)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 60, res.AvgConfidence)
	assert.InDelta(t, 0.10, res.Brier, 1e-9)

	answers := s.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.True(t, answers[0].Correct)
	assert.Equal(t, "q2", answers[1].QuestionID)
	assert.False(t, answers[1].Correct)

	// Results is terminal until reset.
	assert.False(t, s.RecordAndAdvance())
	assert.False(t, s.SelectOption("a"))
	assert.False(t, s.Start())
	assert.Len(t, s.Answers(), 2)
}

func TestReset(t *testing.T) {
	s := startedSession(t)
	first := s.AttemptID()

	// Reset is only valid from results.
	assert.False(t, s.Reset())

	answer(t, s, "a", 80)
	answer(t, s, "b", 100)
	require.True(t, s.Reset())

	assert.Equal(t, ScreenIntro, s.Screen())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
	_, ok := s.Results()
	assert.False(t, ok)

	require.True(t, s.Start())
	assert.NotEqual(t, first, s.AttemptID())
	assert.Equal(t, 0, s.Index())
	_, hasSel := s.Selection()
	_, hasConf := s.Confidence()
	assert.False(t, hasSel)
	assert.False(t, hasConf)
	assert.False(t, s.Revealed())
	assert.True(t, s.SelectOption("a"), "selection is enabled again after reset")
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := startedSession(t)
	answer(t, s, "a", 80)

	got := s.Answers()
	got[0].SelectedID = "mutated"
	assert.Equal(t, "a", s.Answers()[0].SelectedID)
}

func TestProgress(t *testing.T) {
	s := New(testBank(t))
	assert.Equal(t, 0.0, s.Progress())

	require.True(t, s.Start())
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	answer(t, s, "a", 50)
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)

	answer(t, s, "a", 50)
	assert.Equal(t, 1.0, s.Progress())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "intro", ScreenIntro.String())
	assert.Equal(t, "assessment", ScreenAssessment.String())
	assert.Equal(t, "results", ScreenResults.String())
	assert.Equal(t, "unknown", Screen(42).String())
}
