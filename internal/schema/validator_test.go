package schema

import (
	"errors"
	"testing"

	"github.com/Uday1017/Vocably/internal/models"
	"github.com/Uday1017/Vocably/internal/scoring"
)

func TestValidator_AcceptsComposedReport(t *testing.T) {
	v := New()

	report := scoring.BuildReport("Thank you everyone for joining today.", nil, nil)
	if err := v.Validate(report); err != nil {
		t.Errorf("composed report rejected: %v", err)
	}

	withVisuals := scoring.BuildReport("Thank you everyone.", nil, &models.VisualReport{
		EyeContactPct:      80,
		HandUsagePct:       40,
		SmilePct:           20,
		DominantExpression: "neutral",
		FramesAnalyzed:     60,
	})
	if err := v.Validate(withVisuals); err != nil {
		t.Errorf("composed report with visuals rejected: %v", err)
	}
}

func TestValidator_RejectsScoreOutOfRange(t *testing.T) {
	v := New()

	report := scoring.BuildReport("Hello.", nil, nil)
	report.GrammarScore = 101

	if err := v.Validate(report); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("expected ErrScoreOutOfRange, got %v", err)
	}

	report = scoring.BuildReport("Hello.", nil, nil)
	report.OverallScore = -1
	if err := v.Validate(report); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("expected ErrScoreOutOfRange, got %v", err)
	}
}

func TestValidator_RejectsMissingMessage(t *testing.T) {
	v := New()

	report := scoring.BuildReport("Hello.", nil, nil)
	report.OverallMessage = ""

	if err := v.Validate(report); !errors.Is(err, ErrMissingMessage) {
		t.Errorf("expected ErrMissingMessage, got %v", err)
	}
}

func TestValidator_RejectsIncompleteFeedback(t *testing.T) {
	v := New()

	report := scoring.BuildReport("Hello.", nil, nil)
	report.DetailedFeedback = report.DetailedFeedback[:2]

	if err := v.Validate(report); !errors.Is(err, ErrMissingFeedback) {
		t.Errorf("expected ErrMissingFeedback, got %v", err)
	}
}

func TestValidator_FeedbackCountTracksBodyScore(t *testing.T) {
	v := New()

	// Body score present but only 3 feedback items: invalid.
	report := scoring.BuildReport("Hello.", nil, &models.VisualReport{
		EyeContactPct:      80,
		DominantExpression: "neutral",
		FramesAnalyzed:     60,
	})
	report.DetailedFeedback = report.DetailedFeedback[:3]

	if err := v.Validate(report); !errors.Is(err, ErrMissingFeedback) {
		t.Errorf("expected ErrMissingFeedback, got %v", err)
	}
}
