// Package mock provides a visual analyzer for testing without the
// analysis sidecar.
package mock

import (
	"context"

	"github.com/Uday1017/Vocably/internal/models"
)

// Analyzer implements visual.Analyzer with a fixed report.
type Analyzer struct {
	Report *models.VisualReport
	Err    error
}

// New creates a mock analyzer with a plausible mid-range report.
func New() *Analyzer {
	return &Analyzer{
		Report: &models.VisualReport{
			FacePresence:       92.5,
			EyeContactPct:      68.0,
			HandUsagePct:       35.0,
			HandMovements:      24,
			SmilePct:           18.0,
			DominantExpression: "neutral",
			FramesAnalyzed:     120,
		},
	}
}

// Analyze returns the configured report.
func (a *Analyzer) Analyze(ctx context.Context, videoPath string) (*models.VisualReport, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Report, nil
}
