// Package visual defines the interface to the visual-analysis sidecar
// that inspects presentation videos frame by frame.
package visual

import (
	"context"

	"github.com/Uday1017/Vocably/internal/models"
)

// Analyzer produces a visual report for a video file.
type Analyzer interface {
	// Analyze runs visual analysis on the video at videoPath.
	Analyze(ctx context.Context, videoPath string) (*models.VisualReport, error)
}
