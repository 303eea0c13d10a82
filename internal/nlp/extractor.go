// Package nlp derives lexical signals from a transcript and the grammar
// checker findings. Extraction is deterministic: identical inputs always
// produce identical signals.
package nlp

import (
	"strings"

	"github.com/Uday1017/Vocably/internal/models"
)

// fillerTerms are counted as substring occurrences over the whole
// lowercased transcript, not token-exact.
var fillerTerms = []string{"um", "uh", "like", "you know", "so", "actually", "basically", "literally"}

// politeTerms and impoliteTerms are presence-tested: one hit per distinct
// term, regardless of how often it occurs.
var (
	politeTerms   = []string{"please", "thank", "appreciate", "kindly", "would", "could", "may"}
	impoliteTerms = []string{"must", "have to", "need to", "should"}
)

const (
	maxIssueDetails  = 5
	maxRepeatedWords = 5
	repeatThreshold  = 3
	repeatMinLength  = 3
)

// Signals holds the lexical statistics derived from one transcript.
// Immutable once computed.
type Signals struct {
	TotalWords     int
	TotalSentences int
	GrammarErrors  int
	GrammarDetails []models.GrammarIssue
	FillerCount    int
	RepeatedWords  []string
	PoliteCount    int
	ImpoliteCount  int
}

// Extract computes Signals from a transcript and the grammar checker issue
// list. Issue order is preserved; only the first five issues are retained
// as details. An empty transcript yields all-zero counts, not an error.
func Extract(transcript string, issues []models.GrammarIssue) Signals {
	lower := strings.ToLower(transcript)
	words := strings.Fields(lower)

	sig := Signals{
		TotalWords:     len(words),
		TotalSentences: countSentences(transcript),
		GrammarErrors:  len(issues),
		GrammarDetails: firstIssues(issues, maxIssueDetails),
		RepeatedWords:  repeatedWords(words),
	}

	for _, term := range fillerTerms {
		sig.FillerCount += strings.Count(lower, term)
	}
	for _, term := range politeTerms {
		if strings.Contains(lower, term) {
			sig.PoliteCount++
		}
	}
	for _, term := range impoliteTerms {
		if strings.Contains(lower, term) {
			sig.ImpoliteCount++
		}
	}

	return sig
}

// countSentences splits on runs of sentence-ending punctuation and counts
// the non-empty fragments.
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

// repeatedWords returns words used more than repeatThreshold times with
// length above repeatMinLength, in first-occurrence order, capped at
// maxRepeatedWords.
func repeatedWords(words []string) []string {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	var repeated []string
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		if counts[w] > repeatThreshold && len(w) > repeatMinLength {
			repeated = append(repeated, w)
			if len(repeated) == maxRepeatedWords {
				break
			}
		}
	}
	return repeated
}

func firstIssues(issues []models.GrammarIssue, n int) []models.GrammarIssue {
	if len(issues) <= n {
		return issues
	}
	return issues[:n]
}
