package visual

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Uday1017/Vocably/internal/models"
)

// Client implements Analyzer against the sidecar's /analyze endpoint.
type Client struct {
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewClient creates a client for the visual-analysis sidecar at baseURL.
// Frame-by-frame analysis is slow, so the timeout is generous.
func NewClient(logger zerolog.Logger, baseURL string) *Client {
	return &Client{
		logger:  logger.With().Str("component", "visual-analyzer").Logger(),
		client:  &http.Client{Timeout: 5 * time.Minute},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type analyzeRequest struct {
	VideoPath string `json:"video_path"`
}

// Analyze posts the video path to the sidecar and decodes its report.
func (c *Client) Analyze(ctx context.Context, videoPath string) (*models.VisualReport, error) {
	b, err := json.Marshal(analyzeRequest{VideoPath: videoPath})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/analyze", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("visual analyze: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("visual analyze %s: %s", resp.Status, string(body))
	}

	var report models.VisualReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("visual analyze decode: %w", err)
	}

	c.logger.Debug().
		Int("frames", report.FramesAnalyzed).
		Str("expression", report.DominantExpression).
		Msg("visual analysis completed")
	return &report, nil
}
