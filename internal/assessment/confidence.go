package assessment

// ConfidenceStep is the granularity of confidence ratings.
const ConfidenceStep = 5

// DefaultConfidence is the midpoint a confidence input shows before any
// interaction. It never counts as a recorded rating.
const DefaultConfidence = 50

// ConfidenceInput reports the current reading of a confidence widget.
type ConfidenceInput interface {
	// Value returns the displayed rating in [0, 100].
	Value() int

	// Interacted reports whether the user has changed the rating at least once.
	Interacted() bool
}

// Reading is a plain ConfidenceInput value.
type Reading struct {
	Rating  int
	Touched bool
}

func (r Reading) Value() int       { return r.Rating }
func (r Reading) Interacted() bool { return r.Touched }

// Rated returns a Reading for a rating the user actively chose.
func Rated(v int) Reading {
	return Reading{Rating: v, Touched: true}
}

// ValidConfidence reports whether v is a legal rating.
func ValidConfidence(v int) bool {
	return v >= 0 && v <= 100 && v%ConfidenceStep == 0
}
