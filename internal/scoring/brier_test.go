package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersWith(confidence int, correct ...bool) []Answer {
	answers := make([]Answer, 0, len(correct))
	for i, c := range correct {
		answers = append(answers, Answer{
			QuestionID: string(rune('a' + i)),
			SelectedID: "x",
			Confidence: confidence,
			Correct:    c,
		})
	}
	return answers
}

func TestCompute_EmptyAnswers(t *testing.T) {
	_, err := Compute(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoAnswers))

	_, err = Compute([]Answer{})
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestCompute_TwoQuestionScenario(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", SelectedID: "a", Confidence: 80, Correct: true},
		{QuestionID: "q2", SelectedID: "c", Confidence: 40, Correct: false},
	}

	res, err := Compute(answers)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Correct)
	assert.Equal(t, 60, res.AvgConfidence)
	assert.InDelta(t, 0.10, res.Brier, 1e-9)
	assert.Equal(t, 50, res.AccuracyPercent())
	assert.Equal(t, 10, res.Overconfidence())
}

func TestCompute_BrierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		answers    []Answer
		wantBrier  float64
		wantTotal  int
		wantAvgCon int
	}{
		{"all correct at 100", answersWith(100, true, true, true, true), 0.0, 4, 100},
		{"all wrong at 100", answersWith(100, false, false, false), 1.0, 3, 100},
		{"uniform 50 all correct", answersWith(50, true, true), 0.25, 2, 50},
		{"uniform 50 all wrong", answersWith(50, false, false, false), 0.25, 3, 50},
		{"uniform 50 mixed", answersWith(50, true, false, true, false, false, true), 0.25, 6, 50},
		{"all wrong at 0", answersWith(0, false, false), 0.0, 2, 0},
		{"all correct at 0", answersWith(0, true), 1.0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantAvgCon, res.AvgConfidence)
			assert.InDelta(t, tt.wantBrier, res.Brier, 1e-12)
		})
	}
}

func TestCompute_BrierAlwaysInRange(t *testing.T) {
	for confidence := 0; confidence <= 100; confidence += 5 {
		for mask := 0; mask < 8; mask++ {
			answers := answersWith(confidence, mask&1 != 0, mask&2 != 0, mask&4 != 0)
			res, err := Compute(answers)
			require.NoError(t, err)
			assert.Equal(t, 3, res.Total)
			assert.GreaterOrEqual(t, res.Brier, 0.0)
			assert.LessOrEqual(t, res.Brier, 1.0)
		}
	}
}

func TestCompute_AvgConfidenceRoundsHalfAwayFromZero(t *testing.T) {
	// (60 + 65) / 2 = 62.5
	res, err := Compute([]Answer{
		{QuestionID: "q1", Confidence: 60, Correct: true},
		{QuestionID: "q2", Confidence: 65, Correct: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 63, res.AvgConfidence)

	// (5 + 10) / 2 = 7.5
	res, err = Compute([]Answer{
		{QuestionID: "q1", Confidence: 5},
		{QuestionID: "q2", Confidence: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, res.AvgConfidence)
}

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 6, 0},
		{1, 6, 17},
		{3, 6, 50},
		{5, 6, 83},
		{6, 6, 100},
		{1, 8, 13}, // 12.5 rounds up
		{0, 0, 0},
	}
	for _, tt := range tests {
		r := Results{Correct: tt.correct, Total: tt.total}
		assert.Equal(t, tt.want, r.AccuracyPercent(), "%d/%d", tt.correct, tt.total)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, -3, Round(-2.5))
	assert.Equal(t, 2, Round(2.4999))
	assert.Equal(t, 0, Round(0.49))
}
