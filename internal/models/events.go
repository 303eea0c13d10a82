package models

// AnalysisCompleted is published when an analysis finishes successfully.
type AnalysisCompleted struct {
	EventType         string `json:"eventType"`
	AnalysisID        int64  `json:"analysisId"`
	Filename          string `json:"filename"`
	Timestamp         int64  `json:"timestamp"`
	GrammarScore      int    `json:"grammarScore"`
	FluencyScore      int    `json:"fluencyScore"`
	PolitenessScore   int    `json:"politenessScore"`
	BodyLanguageScore *int   `json:"bodyLanguageScore"`
	OverallScore      int    `json:"overallScore"`
	OverallMessage    string `json:"overallMessage"`
}

// AnalysisFailed is published when an analysis job fails at some stage.
type AnalysisFailed struct {
	EventType  string `json:"eventType"`
	AnalysisID int64  `json:"analysisId"`
	Filename   string `json:"filename"`
	Stage      string `json:"stage"`
	Error      string `json:"error"`
	Timestamp  int64  `json:"timestamp"`
}
