// Package scoring converts extracted communication signals into component
// scores, categorical feedback, and the final report. Everything in this
// package is a pure function of its inputs: no I/O, no clock, no
// randomness, safe to invoke from any number of concurrent handlers.
package scoring

import (
	"math"

	"github.com/Uday1017/Vocably/internal/nlp"
	"github.com/Uday1017/Vocably/internal/vision"
)

// Scoring weights and penalties.
const (
	grammarErrorPenalty   = 5
	fillerPenaltyFactor   = 2
	repetitionPenalty     = 3
	politenessBase        = 70
	politeBoostPerHit     = 4
	politeBoostCap        = 20
	impolitePenaltyPerHit = 5
	handUsageScale        = 1.5
)

// Scores holds the unrounded component scores. BodyLanguage is nil when no
// visual signals were available. Overall is the pre-rounded average used
// for the overall message tier; published values are rounded later, at
// report assembly.
type Scores struct {
	Grammar      float64
	Fluency      float64
	Politeness   float64
	BodyLanguage *float64
	Overall      float64
}

// Compute maps signal sets to component scores. Each component is clamped
// to [0,100] before averaging, and the overall score is the arithmetic
// mean of the three text components, or of all four when visual signals
// are present.
func Compute(sig nlp.Signals, vis *vision.Signals) Scores {
	grammar := clamp(100 - float64(grammarErrorPenalty*sig.GrammarErrors))

	var fillerPenalty float64
	if sig.TotalWords > 0 {
		fillerPenalty = float64(sig.FillerCount) / float64(sig.TotalWords) * 100 * fillerPenaltyFactor
	}
	fluency := clamp(100 - fillerPenalty - float64(repetitionPenalty*len(sig.RepeatedWords)))

	politeBoost := math.Min(politeBoostCap, float64(politeBoostPerHit*sig.PoliteCount))
	politeness := clamp(politenessBase + politeBoost - float64(impolitePenaltyPerHit*sig.ImpoliteCount))

	s := Scores{
		Grammar:    grammar,
		Fluency:    fluency,
		Politeness: politeness,
	}

	if vis == nil {
		s.Overall = (grammar + fluency + politeness) / 3
		return s
	}

	body := clamp((vis.EyeContactPct + scaledHandUsage(vis) + expressionScore(vis.DominantExpression)) / 3)
	s.BodyLanguage = &body
	s.Overall = (grammar + fluency + politeness + body) / 4
	return s
}

// scaledHandUsage boosts the raw hand-usage percentage, capped at 100.
func scaledHandUsage(vis *vision.Signals) float64 {
	return math.Min(100, vis.HandUsagePct*handUsageScale)
}

func expressionScore(expr vision.Expression) float64 {
	switch expr {
	case vision.ExpressionEngaging:
		return 90
	case vision.ExpressionNeutral:
		return 70
	default:
		return 50
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundScore converts an unrounded score to its published integer form.
func roundScore(v float64) int {
	return int(math.Round(v))
}
