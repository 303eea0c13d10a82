package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Uday1017/Vocably/internal/models"
	"github.com/Uday1017/Vocably/internal/observability/metrics"
	"github.com/Uday1017/Vocably/internal/schema"
	"github.com/Uday1017/Vocably/internal/scoring"
	"github.com/Uday1017/Vocably/internal/service/grammar"
	"github.com/Uday1017/Vocably/internal/service/media"
	"github.com/Uday1017/Vocably/internal/service/stt"
	"github.com/Uday1017/Vocably/internal/service/visual"
)

// Pipeline stage names, used in failure records and metrics labels.
const (
	StageAudioExtraction = "audio_extraction"
	StageTranscription   = "transcription"
	StageGrammarCheck    = "grammar_check"
	StageVisualAnalysis  = "visual_analysis"
	StageValidation      = "validation"
	StagePersistence     = "persistence"
)

// Store is the subset of the analysis store the runner needs.
type Store interface {
	MarkProcessing(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, stage, errMsg string) error
	SaveReport(ctx context.Context, id int64, report models.Report) error
}

// Publisher is the subset of the event publisher the runner needs.
type Publisher interface {
	PublishCompleted(ctx context.Context, key string, event any) error
	PublishFailed(ctx context.Context, key string, event any) error
}

// Collaborators holds the external services the pipeline calls.
// Vision may be nil when the visual-analysis sidecar is disabled; the
// pipeline then produces a text-only report.
type Collaborators struct {
	Media   media.Extractor
	STT     stt.Transcriber
	Grammar grammar.Checker
	Vision  visual.Analyzer
}

// Runner drives analysis jobs through the pipeline:
// extract audio, transcribe, grammar-check, visually analyze, score,
// validate, persist, publish.
type Runner struct {
	logger    zerolog.Logger
	store     Store
	publisher Publisher
	validator *schema.Validator
	collab    Collaborators
	metrics   *metrics.Metrics
	timeout   time.Duration

	mu   sync.Mutex
	jobs map[int64]*Lifecycle
}

// NewRunner creates a runner.
func NewRunner(logger zerolog.Logger, st Store, pub Publisher, collab Collaborators, timeout time.Duration) *Runner {
	return &Runner{
		logger:    logger.With().Str("component", "job-runner").Logger(),
		store:     st,
		publisher: pub,
		validator: schema.New(),
		collab:    collab,
		metrics:   metrics.DefaultMetrics,
		timeout:   timeout,
		jobs:      make(map[int64]*Lifecycle),
	}
}

// lifecycle returns the job's lifecycle, creating it on first use.
func (r *Runner) lifecycle(id int64) *Lifecycle {
	r.mu.Lock()
	defer r.mu.Unlock()
	lc, ok := r.jobs[id]
	if !ok {
		lc = NewLifecycle(id)
		r.jobs[id] = lc
	}
	return lc
}

// State returns the lifecycle state for an analysis, and whether the
// runner has seen it.
func (r *Runner) State(id int64) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lc, ok := r.jobs[id]
	if !ok {
		return StatePending, false
	}
	return lc.State(), true
}

// Run processes one analysis end to end. Intended to be called in its
// own goroutine; all errors are recorded on the analysis itself.
func (r *Runner) Run(id int64, filename, videoPath string) {
	lc := r.lifecycle(id)
	if err := lc.Begin(); err != nil {
		r.logger.Warn().Int64("analysisId", id).Err(err).Msg("job not started")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	r.metrics.RecordAnalysisStart()
	logger := r.logger.With().Int64("analysisId", id).Str("filename", filename).Logger()
	logger.Info().Msg("analysis started")

	if err := r.store.MarkProcessing(ctx, id); err != nil {
		r.fail(ctx, lc, id, filename, StagePersistence, err)
		r.metrics.RecordAnalysisFailure(StagePersistence, time.Since(start).Seconds())
		return
	}

	report, stage, err := r.process(ctx, logger, videoPath)
	if err != nil {
		r.fail(ctx, lc, id, filename, stage, err)
		r.metrics.RecordAnalysisFailure(stage, time.Since(start).Seconds())
		return
	}

	if err := r.store.SaveReport(ctx, id, *report); err != nil {
		r.fail(ctx, lc, id, filename, StagePersistence, err)
		r.metrics.RecordAnalysisFailure(StagePersistence, time.Since(start).Seconds())
		return
	}

	if err := lc.Complete(); err != nil {
		logger.Error().Err(err).Msg("lifecycle complete failed")
	}
	r.metrics.RecordAnalysisSuccess(report.OverallScore, time.Since(start).Seconds())
	logger.Info().
		Int("overallScore", report.OverallScore).
		Dur("duration", time.Since(start)).
		Msg("analysis completed")

	r.publishCompleted(ctx, id, filename, report)
}

// process runs the pipeline stages and returns the validated report,
// or the failing stage and error.
func (r *Runner) process(ctx context.Context, logger zerolog.Logger, videoPath string) (*models.Report, string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".wav"

	if err := r.runStage(StageAudioExtraction, func() error {
		return r.collab.Media.ExtractAudio(ctx, videoPath, audioPath)
	}); err != nil {
		return nil, StageAudioExtraction, err
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("audio", audioPath).Msg("failed to remove audio file")
		}
	}()

	var transcript string
	if err := r.runStage(StageTranscription, func() error {
		var err error
		transcript, err = r.collab.STT.Transcribe(ctx, audioPath)
		return err
	}); err != nil {
		return nil, StageTranscription, err
	}

	var issues []models.GrammarIssue
	if err := r.runStage(StageGrammarCheck, func() error {
		var err error
		issues, err = r.collab.Grammar.Check(ctx, transcript)
		return err
	}); err != nil {
		return nil, StageGrammarCheck, err
	}

	// Visual analysis is best-effort: a failed or disabled sidecar
	// degrades to a text-only report rather than failing the job.
	var visualReport *models.VisualReport
	if r.collab.Vision != nil {
		stageErr := r.runStage(StageVisualAnalysis, func() error {
			var err error
			visualReport, err = r.collab.Vision.Analyze(ctx, videoPath)
			return err
		})
		if stageErr != nil {
			logger.Warn().Err(stageErr).Msg("visual analysis failed, continuing without body language")
			visualReport = nil
		}
	}

	report := scoring.BuildReport(transcript, issues, visualReport)

	if err := r.validator.Validate(report); err != nil {
		return nil, StageValidation, fmt.Errorf("report validation: %w", err)
	}

	return &report, "", nil
}

// runStage executes fn and records its duration under the stage label.
func (r *Runner) runStage(stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.metrics.RecordStage(stage, time.Since(start).Seconds())
	return err
}

func (r *Runner) fail(ctx context.Context, lc *Lifecycle, id int64, filename, stage string, err error) {
	logger := r.logger.With().Int64("analysisId", id).Str("stage", stage).Logger()
	logger.Error().Err(err).Msg("analysis failed")

	if markErr := r.store.MarkFailed(ctx, id, stage, err.Error()); markErr != nil {
		logger.Error().Err(markErr).Msg("failed to record failure")
	}
	if lcErr := lc.Fail(); lcErr != nil {
		logger.Error().Err(lcErr).Msg("lifecycle fail failed")
	}

	ev := models.AnalysisFailed{
		EventType:  "analysis.failed",
		AnalysisID: id,
		Filename:   filename,
		Stage:      stage,
		Error:      err.Error(),
		Timestamp:  time.Now().UnixMilli(),
	}
	if pubErr := r.publisher.PublishFailed(ctx, strconv.FormatInt(id, 10), ev); pubErr != nil {
		logger.Error().Err(pubErr).Msg("failed to publish failure event")
	}
}

func (r *Runner) publishCompleted(ctx context.Context, id int64, filename string, report *models.Report) {
	ev := models.AnalysisCompleted{
		EventType:         "analysis.completed",
		AnalysisID:        id,
		Filename:          filename,
		Timestamp:         time.Now().UnixMilli(),
		GrammarScore:      report.GrammarScore,
		FluencyScore:      report.FluencyScore,
		PolitenessScore:   report.PolitenessScore,
		BodyLanguageScore: report.BodyLanguageScore,
		OverallScore:      report.OverallScore,
		OverallMessage:    report.OverallMessage,
	}
	if err := r.publisher.PublishCompleted(ctx, strconv.FormatInt(id, 10), ev); err != nil {
		r.logger.Error().Int64("analysisId", id).Err(err).Msg("failed to publish completion event")
	}
}
