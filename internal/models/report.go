// Package models defines the data structures for analysis signals,
// reports, and published events.
package models

// GrammarIssue is a single finding reported by the grammar checker.
type GrammarIssue struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// VisualReport is the raw output of the visual analyzer. It is passed
// through to the final report unchanged as video_stats.
type VisualReport struct {
	FacePresence       float64 `json:"face_presence"`
	EyeContactPct      float64 `json:"eye_contact_percentage"`
	HandUsagePct       float64 `json:"hand_usage_percentage"`
	HandMovements      int     `json:"hand_movements"`
	SmilePct           float64 `json:"smile_percentage"`
	DominantExpression string  `json:"dominant_expression"`
	FramesAnalyzed     int     `json:"total_frames_analyzed"`
}

// Feedback categories, in the fixed order they appear in a report.
const (
	CategoryGrammar      = "Grammar"
	CategoryFluency      = "Fluency"
	CategoryPoliteness   = "Politeness"
	CategoryBodyLanguage = "Body Language"
)

// Status is the tier assigned to a component score.
type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusNeedsImprovement Status = "needs_improvement"
)

// FeedbackItem is the per-category feedback block of a report.
type FeedbackItem struct {
	Category    string   `json:"category"`
	Score       int      `json:"score"`
	Status      Status   `json:"status"`
	Summary     string   `json:"summary"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ResourceLink is one curated learning resource.
type ResourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// ResourceGroup is the curated resource list for one category.
type ResourceGroup struct {
	Category string         `json:"category"`
	Items    []ResourceLink `json:"items"`
}

// Stats summarizes the lexical statistics behind a report.
type Stats struct {
	TotalWords        int `json:"total_words"`
	TotalSentences    int `json:"total_sentences"`
	GrammarErrors     int `json:"grammar_errors"`
	FillerWords       int `json:"filler_words"`
	PoliteExpressions int `json:"polite_expressions"`
}

// Report is the final communication-quality report for one analysis.
// BodyLanguageScore and VideoStats are nil when no visual analysis ran.
type Report struct {
	GrammarScore      int             `json:"grammar_score"`
	FluencyScore      int             `json:"fluency_score"`
	PolitenessScore   int             `json:"politeness_score"`
	BodyLanguageScore *int            `json:"body_language_score"`
	OverallScore      int             `json:"overall_score"`
	OverallMessage    string          `json:"overall_message"`
	DetailedFeedback  []FeedbackItem  `json:"detailed_feedback"`
	Resources         []ResourceGroup `json:"resources"`
	Stats             Stats           `json:"stats"`
	VideoStats        *VisualReport   `json:"video_stats"`
}
