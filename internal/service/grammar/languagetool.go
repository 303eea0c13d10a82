package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Uday1017/Vocably/internal/models"
)

// LanguageTool implements Checker against a LanguageTool server's
// /v2/check endpoint.
type LanguageTool struct {
	logger   zerolog.Logger
	client   *http.Client
	baseURL  string
	language string
}

// NewLanguageTool creates a client for the LanguageTool server at baseURL.
func NewLanguageTool(logger zerolog.Logger, baseURL, language string) *LanguageTool {
	return &LanguageTool{
		logger:   logger.With().Str("component", "grammar-checker").Logger(),
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
	}
}

type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Context struct {
			Text string `json:"text"`
		} `json:"context"`
	} `json:"matches"`
}

// Check posts the transcript to /v2/check and maps each match to a
// GrammarIssue. An empty transcript is not sent at all.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]models.GrammarIssue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grammar check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("grammar check %s: %s", resp.Status, string(body))
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("grammar check decode: %w", err)
	}

	issues := make([]models.GrammarIssue, 0, len(out.Matches))
	for _, m := range out.Matches {
		issues = append(issues, models.GrammarIssue{
			Message: m.Message,
			Context: m.Context.Text,
		})
	}

	lt.logger.Debug().Int("issues", len(issues)).Msg("grammar check completed")
	return issues, nil
}
