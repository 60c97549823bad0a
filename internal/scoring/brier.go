package scoring

import (
	"errors"
	"math"
)

// ErrNoAnswers is returned when scoring is attempted over an empty answer set.
var ErrNoAnswers = errors.New("scoring: no answers to score")

// Results holds the aggregate metrics for a completed assessment.
type Results struct {
	Total         int
	Correct       int
	AvgConfidence int

	// Brier is the mean squared error between the stated confidence (as a
	// probability) and the outcome. 0.0 is perfect, 0.25 matches always
	// answering 50%, 1.0 is fully confident and always wrong.
	Brier float64
}

// Compute scores a full answer set.
func Compute(answers []Answer) (Results, error) {
	if len(answers) == 0 {
		return Results{}, ErrNoAnswers
	}

	var correct, confidenceSum int
	var brierSum float64
	for _, a := range answers {
		outcome := 0.0
		if a.Correct {
			correct++
			outcome = 1.0
		}
		confidenceSum += a.Confidence

		p := float64(a.Confidence) / 100
		brierSum += (p - outcome) * (p - outcome)
	}

	total := len(answers)
	return Results{
		Total:         total,
		Correct:       correct,
		AvgConfidence: Round(float64(confidenceSum) / float64(total)),
		Brier:         brierSum / float64(total),
	}, nil
}

// AccuracyPercent returns the share of correct answers as a whole percentage.
func (r Results) AccuracyPercent() int {
	if r.Total == 0 {
		return 0
	}
	return Round(100 * float64(r.Correct) / float64(r.Total))
}

// Overconfidence is the gap between average confidence and accuracy, in
// percentage points. Positive values mean the respondent was overconfident.
func (r Results) Overconfidence() int {
	return r.AvgConfidence - r.AccuracyPercent()
}

// Round rounds to the nearest integer, with halves rounded away from zero.
func Round(x float64) int {
	return int(math.Round(x))
}
