package bank

import "fmt"

// Option is a single answer choice of a question.
type Option struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// Question is an immutable multiple-choice item.
type Question struct {
	ID          string   `yaml:"id" json:"id"`
	Category    string   `yaml:"category" json:"category"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Options     []Option `yaml:"options" json:"options"`
	CorrectID   string   `yaml:"correct_id" json:"correct_id"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// HasOption reports whether id names one of the question's options.
func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Bank is a validated, ordered sequence of questions. Order is presentation order.
type Bank struct {
	round     string
	questions []Question
}

// New validates the given questions and returns a Bank holding a copy of them.
func New(round string, questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	return &Bank{round: round, questions: qs}, nil
}

// Get returns the question at index. It panics if index is out of range.
func (b *Bank) Get(index int) Question {
	if index < 0 || index >= len(b.questions) {
		panic(fmt.Sprintf("bank: question index %d out of range [0, %d)", index, len(b.questions)))
	}
	return b.questions[index].clone()
}

// clone returns q with its own copy of the options slice.
func (q Question) clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}

// Count returns the number of questions.
func (b *Bank) Count() int {
	return len(b.questions)
}

// Round returns the display name of the round, e.g. "Round 1".
func (b *Bank) Round() string {
	return b.round
}

// Questions returns a copy of all questions in presentation order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
