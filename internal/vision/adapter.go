// Package vision normalizes raw visual analyzer output into the
// score-ready body-language signal set.
package vision

import (
	"strings"

	"github.com/Uday1017/Vocably/internal/models"
)

// Expression is the dominant facial expression label reported by the
// visual analyzer.
type Expression string

const (
	ExpressionEngaging Expression = "engaging"
	ExpressionNeutral  Expression = "neutral"
	ExpressionSerious  Expression = "serious"
	ExpressionUnknown  Expression = "unknown"
)

// Signals is the normalized body-language metric set. All percentages are
// clamped to [0,100] at this boundary.
type Signals struct {
	EyeContactPct      float64
	HandUsagePct       float64
	SmilePct           float64
	DominantExpression Expression
}

// Adapt converts a raw visual analyzer report into score-ready signals.
// A nil report, or a degenerate one (no frames analyzed and an unknown
// expression), means the body-language component is absent: Adapt returns
// nil rather than a placeholder signal set.
func Adapt(report *models.VisualReport) *Signals {
	if report == nil {
		return nil
	}
	expr := ParseExpression(report.DominantExpression)
	if report.FramesAnalyzed == 0 && expr == ExpressionUnknown {
		return nil
	}
	return &Signals{
		EyeContactPct:      clampPct(report.EyeContactPct),
		HandUsagePct:       clampPct(report.HandUsagePct),
		SmilePct:           clampPct(report.SmilePct),
		DominantExpression: expr,
	}
}

// ParseExpression maps an analyzer label onto the known expression set.
// Unrecognized labels map to ExpressionUnknown.
func ParseExpression(label string) Expression {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "engaging":
		return ExpressionEngaging
	case "neutral":
		return ExpressionNeutral
	case "serious":
		return ExpressionSerious
	default:
		return ExpressionUnknown
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
