// Package grammar defines the interface for grammar-check providers.
package grammar

import (
	"context"

	"github.com/Uday1017/Vocably/internal/models"
)

// Checker finds grammatical issues in a transcript.
type Checker interface {
	// Check returns the issues found in text, in provider order.
	// An empty transcript yields no issues and no error.
	Check(ctx context.Context, text string) ([]models.GrammarIssue, error)
}
