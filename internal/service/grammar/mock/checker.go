// Package mock provides a grammar checker for testing without a
// LanguageTool server.
package mock

import (
	"context"

	"github.com/Uday1017/Vocably/internal/models"
)

// Checker implements grammar.Checker with fixed issues.
type Checker struct {
	Issues []models.GrammarIssue
	Err    error
}

// New creates a mock checker that returns no issues.
func New() *Checker {
	return &Checker{}
}

// Check returns the configured issues, or nothing for empty text.
func (c *Checker) Check(ctx context.Context, text string) ([]models.GrammarIssue, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if text == "" {
		return nil, nil
	}
	return c.Issues, nil
}
