// Package schema validates report payloads before they are persisted
// or published.
package schema

import (
	"errors"
	"fmt"

	"github.com/Uday1017/Vocably/internal/models"
)

// Validation errors.
var (
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrMissingMessage  = errors.New("overall message is empty")
	ErrMissingFeedback = errors.New("detailed feedback is incomplete")
)

// Validator checks report invariants.
type Validator struct{}

// New creates a new report validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks that every score is within [0,100], the overall
// message is set, and feedback covers at least the three text
// categories (plus body language when its score is present).
func (v *Validator) Validate(report models.Report) error {
	scores := map[string]int{
		"grammar_score":    report.GrammarScore,
		"fluency_score":    report.FluencyScore,
		"politeness_score": report.PolitenessScore,
		"overall_score":    report.OverallScore,
	}
	if report.BodyLanguageScore != nil {
		scores["body_language_score"] = *report.BodyLanguageScore
	}
	for name, score := range scores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%w: %s = %d", ErrScoreOutOfRange, name, score)
		}
	}

	if report.OverallMessage == "" {
		return ErrMissingMessage
	}

	want := 3
	if report.BodyLanguageScore != nil {
		want = 4
	}
	if len(report.DetailedFeedback) != want {
		return fmt.Errorf("%w: have %d items, want %d", ErrMissingFeedback, len(report.DetailedFeedback), want)
	}

	return nil
}
