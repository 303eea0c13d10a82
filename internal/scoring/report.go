package scoring

import (
	"github.com/Uday1017/Vocably/internal/models"
	"github.com/Uday1017/Vocably/internal/nlp"
	"github.com/Uday1017/Vocably/internal/vision"
)

// Assemble combines scores, feedback, and the raw signals into the final
// report payload. This is a structural merge: all scoring decisions were
// made upstream. Published scores are rounded here; video stats pass
// through only when a body-language score exists, and are nil otherwise.
func Assemble(sig nlp.Signals, scores Scores, fb Feedback, raw *models.VisualReport) models.Report {
	report := models.Report{
		GrammarScore:     roundScore(scores.Grammar),
		FluencyScore:     roundScore(scores.Fluency),
		PolitenessScore:  roundScore(scores.Politeness),
		OverallScore:     roundScore(scores.Overall),
		OverallMessage:   fb.OverallMessage,
		DetailedFeedback: fb.Items,
		Resources:        fb.Resources,
		Stats: models.Stats{
			TotalWords:        sig.TotalWords,
			TotalSentences:    sig.TotalSentences,
			GrammarErrors:     sig.GrammarErrors,
			FillerWords:       sig.FillerCount,
			PoliteExpressions: sig.PoliteCount,
		},
	}

	if scores.BodyLanguage != nil {
		rounded := roundScore(*scores.BodyLanguage)
		report.BodyLanguageScore = &rounded
		report.VideoStats = raw
	}

	return report
}

// BuildReport is the single entry point for the scoring core: it extracts
// lexical signals, adapts visual output, computes scores, composes
// feedback, and assembles the report. Deterministic for identical inputs.
func BuildReport(transcript string, issues []models.GrammarIssue, raw *models.VisualReport) models.Report {
	sig := nlp.Extract(transcript, issues)
	vis := vision.Adapt(raw)
	scores := Compute(sig, vis)
	fb := Compose(sig, vis, scores)
	return Assemble(sig, scores, fb, raw)
}
