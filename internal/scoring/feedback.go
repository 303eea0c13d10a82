package scoring

import (
	"fmt"
	"strings"

	"github.com/Uday1017/Vocably/internal/models"
	"github.com/Uday1017/Vocably/internal/nlp"
	"github.com/Uday1017/Vocably/internal/vision"
)

// Status tier thresholds. Body language keeps its own historical
// thresholds (85/70) instead of the text thresholds (90/80); the
// difference is deliberate and callers rely on it.
const (
	textExcellentThreshold = 90
	textGoodThreshold      = 80
	bodyExcellentThreshold = 85
	bodyGoodThreshold      = 70

	resourceThreshold = 80

	maxIssueMessages = 3
	maxNamedRepeats  = 3
)

// Body-language sub-metric thresholds. Issues and suggestions use
// different cut-offs: an issue names a clear problem, a suggestion fires
// earlier as preventive advice.
const (
	eyeContactIssueThreshold      = 60
	eyeContactSuggestionThreshold = 70
	handUsageIssueThreshold       = 40
	handUsageSuggestionThreshold  = 50
	smileIssueThreshold           = 10
)

// Feedback is the composed categorical feedback for one report: items and
// resource groups in fixed category order, plus the overall message.
type Feedback struct {
	Items          []models.FeedbackItem
	Resources      []models.ResourceGroup
	OverallMessage string
}

// Compose maps each component score, with its supporting signals, to a
// status tier, summary, issue list, suggestion list, and (for low scores)
// curated resources. The overall message is derived solely from the
// pre-rounded average, never from category content.
func Compose(sig nlp.Signals, vis *vision.Signals, scores Scores) Feedback {
	fb := Feedback{OverallMessage: overallMessage(scores.Overall)}

	appendItem := func(item models.FeedbackItem, res *models.ResourceGroup) {
		fb.Items = append(fb.Items, item)
		if res != nil {
			fb.Resources = append(fb.Resources, *res)
		}
	}

	appendItem(grammarFeedback(sig, scores.Grammar))
	appendItem(fluencyFeedback(sig, scores.Fluency))
	appendItem(politenessFeedback(sig, scores.Politeness))

	if scores.BodyLanguage != nil && vis != nil {
		appendItem(bodyLanguageFeedback(vis, *scores.BodyLanguage))
	}

	return fb
}

func textStatus(score float64) models.Status {
	switch {
	case score >= textExcellentThreshold:
		return models.StatusExcellent
	case score >= textGoodThreshold:
		return models.StatusGood
	default:
		return models.StatusNeedsImprovement
	}
}

func bodyStatus(score float64) models.Status {
	switch {
	case score >= bodyExcellentThreshold:
		return models.StatusExcellent
	case score >= bodyGoodThreshold:
		return models.StatusGood
	default:
		return models.StatusNeedsImprovement
	}
}

func overallMessage(avg float64) string {
	switch {
	case avg >= 85:
		return "Outstanding presentation! You demonstrate strong communication skills."
	case avg >= 70:
		return "Good presentation with some areas for improvement."
	default:
		return "Your presentation needs work. Focus on the suggestions below."
	}
}

func grammarFeedback(sig nlp.Signals, score float64) (models.FeedbackItem, *models.ResourceGroup) {
	item := models.FeedbackItem{
		Category: models.CategoryGrammar,
		Score:    roundScore(score),
		Status:   textStatus(score),
		Issues:   []string{},
	}

	switch item.Status {
	case models.StatusExcellent:
		item.Summary = "Your grammar is excellent! Very few errors detected."
		item.Suggestions = []string{"Maintain this level of grammatical accuracy"}
		return item, nil

	case models.StatusGood:
		item.Summary = "Good grammar overall with minor improvements needed."
		if len(sig.GrammarDetails) > 0 {
			item.Issues = []string{bullet(sig.GrammarDetails[0].Message)}
		}
		item.Suggestions = []string{"Review and polish your sentence structure"}
		return item, nil
	}

	for i, d := range sig.GrammarDetails {
		if i == maxIssueMessages {
			break
		}
		item.Issues = append(item.Issues, bullet(d.Message))
	}
	if len(item.Issues) == 0 {
		item.Issues = []string{bullet("Review sentence structure and verb tenses")}
	}
	item.Summary = fmt.Sprintf("Found %d grammatical errors in your presentation.", sig.GrammarErrors)
	item.Suggestions = []string{
		"Proofread your script before presenting",
		"Use grammar checking tools like Grammarly",
		"Practice speaking in complete sentences",
		"Record yourself and review for errors",
	}
	return item, grammarResources()
}

func fluencyFeedback(sig nlp.Signals, score float64) (models.FeedbackItem, *models.ResourceGroup) {
	item := models.FeedbackItem{
		Category: models.CategoryFluency,
		Score:    roundScore(score),
		Status:   textStatus(score),
		Issues:   []string{},
	}

	switch item.Status {
	case models.StatusExcellent:
		item.Summary = "Excellent fluency! Your speech flows naturally and confidently."
		item.Suggestions = []string{"Keep up the great work!"}
		return item, nil

	case models.StatusGood:
		item.Summary = "Good fluency with room for minor improvements."
		if sig.FillerCount > 0 {
			item.Issues = []string{bullet(fmt.Sprintf("Minimize filler words (%d detected)", sig.FillerCount))}
		}
		item.Suggestions = []string{"Practice to reduce hesitations"}
		return item, nil
	}

	if sig.FillerCount > 0 {
		item.Issues = append(item.Issues, bullet(fmt.Sprintf("Used %d filler words (um, uh, like, etc.)", sig.FillerCount)))
	}
	if len(sig.RepeatedWords) > 0 {
		named := sig.RepeatedWords
		if len(named) > maxNamedRepeats {
			named = named[:maxNamedRepeats]
		}
		item.Issues = append(item.Issues, bullet("Repeated words: "+strings.Join(named, ", ")))
	}
	item.Summary = "Your speech flow needs improvement to sound more natural and confident."
	item.Suggestions = []string{
		"Practice pausing instead of using filler words",
		"Slow down your speaking pace",
		"Prepare and rehearse key points",
		"Use breathing techniques to maintain flow",
		"Expand your vocabulary to avoid repetition",
	}
	return item, fluencyResources()
}

func politenessFeedback(sig nlp.Signals, score float64) (models.FeedbackItem, *models.ResourceGroup) {
	item := models.FeedbackItem{
		Category: models.CategoryPoliteness,
		Score:    roundScore(score),
		Status:   textStatus(score),
		Issues:   []string{},
	}

	switch item.Status {
	case models.StatusExcellent:
		item.Summary = "Excellent professional tone and courteous language!"
		item.Suggestions = []string{"Your communication style is very professional"}
		return item, nil

	case models.StatusGood:
		item.Summary = "Good professional tone with minor enhancements possible."
		item.Suggestions = []string{"Consider adding more courteous expressions"}
		return item, nil
	}

	item.Summary = "Your tone could be more courteous and professional."
	item.Issues = []string{
		bullet(fmt.Sprintf("Limited use of polite expressions (%d detected)", sig.PoliteCount)),
		bullet(fmt.Sprintf("Used %d direct/commanding phrases", sig.ImpoliteCount)),
	}
	item.Suggestions = []string{
		"Use 'please', 'thank you', 'I appreciate' more often",
		"Replace 'must' with 'could you please'",
		"Use 'would you' instead of 'you should'",
		"Frame requests as questions, not commands",
		"Show gratitude to your audience",
	}
	return item, politenessResources()
}

func bodyLanguageFeedback(vis *vision.Signals, score float64) (models.FeedbackItem, *models.ResourceGroup) {
	item := models.FeedbackItem{
		Category: models.CategoryBodyLanguage,
		Score:    roundScore(score),
		Status:   bodyStatus(score),
		Issues:   []string{},
	}

	if score >= resourceThreshold {
		item.Summary = "Great non-verbal communication! Your body language supports your message."
		item.Suggestions = []string{"Keep up the excellent body language"}
		return item, nil
	}

	handScaled := scaledHandUsage(vis)

	if vis.EyeContactPct < eyeContactIssueThreshold {
		item.Issues = append(item.Issues, bullet(fmt.Sprintf("Eye contact: %.0f%% - Look at the camera more often", vis.EyeContactPct)))
	}
	if handScaled < handUsageIssueThreshold {
		item.Issues = append(item.Issues, bullet("Hand gestures: Limited usage - Use hands to emphasize points"))
	}
	if vis.SmilePct < smileIssueThreshold {
		item.Issues = append(item.Issues, bullet("Facial expression: Too serious - Smile more to appear approachable"))
	}

	var suggestions []string
	if vis.EyeContactPct < eyeContactSuggestionThreshold {
		suggestions = append(suggestions,
			"Practice looking directly at the camera lens",
			"Imagine you're talking to a friend through the camera",
			"Avoid reading from notes constantly",
		)
	}
	if handScaled < handUsageSuggestionThreshold {
		suggestions = append(suggestions,
			"Use hand gestures to emphasize key points",
			"Keep hands visible and avoid crossing arms",
			"Practice natural gestures that match your words",
		)
	}
	if vis.DominantExpression != vision.ExpressionEngaging {
		suggestions = append(suggestions,
			"Smile naturally when appropriate",
			"Show enthusiasm through facial expressions",
			"Relax your face to appear more approachable",
		)
	}
	if len(suggestions) == 0 {
		suggestions = []string{"Maintain good body language"}
	}

	item.Summary = "Your non-verbal communication impacts how your message is received."
	item.Suggestions = suggestions
	return item, bodyLanguageResources()
}

func bullet(s string) string {
	return "• " + s
}
