package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBank wraps every validation failure of a question bank.
var ErrInvalidBank = errors.New("invalid question bank")

// validateQuestions performs the semantic checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	idSet := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question #%d has an empty ID", i+1))
		} else if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q has %d options, need at least 2", q.ID, len(q.Options)))
		}

		optSet := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				errs = append(errs, fmt.Sprintf("question %q has an option with an empty ID", q.ID))
				continue
			}
			if optSet[o.ID] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option ID %q", q.ID, o.ID))
			}
			optSet[o.ID] = true
		}

		if !optSet[q.CorrectID] {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent correct option %q", q.ID, q.CorrectID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidBank, strings.Join(errs, "\n  "))
	}
	return nil
}
