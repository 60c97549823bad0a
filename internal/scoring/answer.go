package scoring

// Answer is the committed response to a single question.
type Answer struct {
	QuestionID string `json:"question_id"`
	SelectedID string `json:"selected_id"`

	// Confidence is the respondent's rating in [0, 100], step 5.
	Confidence int  `json:"confidence"`
	Correct    bool `json:"correct"`
}
