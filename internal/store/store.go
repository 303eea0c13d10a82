// Package store persists analyses and their reports in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/Uday1017/Vocably/internal/models"
)

// Analysis status values as persisted.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ErrNotFound is returned when an analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS analyses (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    filename      TEXT NOT NULL,
    status        TEXT NOT NULL DEFAULT 'pending',
    stage         TEXT NOT NULL DEFAULT '',
    error         TEXT NOT NULL DEFAULT '',
    overall_score INTEGER,
    report        TEXT,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_status ON analyses(status);
`

// Record is one persisted analysis.
type Record struct {
	ID           int64          `json:"id"`
	Filename     string         `json:"filename"`
	Status       string         `json:"status"`
	Stage        string         `json:"stage,omitempty"`
	Error        string         `json:"error,omitempty"`
	OverallScore *int           `json:"overall_score,omitempty"`
	Report       *models.Report `json:"report,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Progress summarizes a user's completed analyses over time.
// Improvement compares the latest completed analysis to the first;
// it requires at least two completed analyses to mean anything.
type Progress struct {
	TotalAnalyses int     `json:"total_analyses"`
	HasProgress   bool    `json:"has_progress"`
	FirstScore    int     `json:"first_score,omitempty"`
	LatestScore   int     `json:"latest_score,omitempty"`
	Improvement   int     `json:"improvement,omitempty"`
	AverageScore  float64 `json:"average_score,omitempty"`
}

// Store wraps the SQLite database holding analyses.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens or creates the SQLite database at path and ensures the
// schema exists.
func Open(logger zerolog.Logger, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Create inserts a new pending analysis and returns its ID.
func (s *Store) Create(ctx context.Context, filename string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (filename, status, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		filename, StatusPending, now, now)
	if err != nil {
		return 0, fmt.Errorf("create analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create analysis: %w", err)
	}
	s.logger.Info().Int64("analysisId", id).Str("filename", filename).Msg("analysis created")
	return id, nil
}

// MarkProcessing sets the analysis status to processing.
func (s *Store) MarkProcessing(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, StatusProcessing, "", "")
}

// MarkFailed records a failure with the stage it happened in.
func (s *Store) MarkFailed(ctx context.Context, id int64, stage, errMsg string) error {
	return s.setStatus(ctx, id, StatusFailed, stage, errMsg)
}

func (s *Store) setStatus(ctx context.Context, id int64, status, stage, errMsg string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE analyses SET status = ?, stage = ?, error = ?, updated_at = ? WHERE id = ?`,
		status, stage, errMsg, now, id)
	if err != nil {
		return fmt.Errorf("update analysis %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update analysis %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveReport stores the serialized report and marks the analysis completed.
func (s *Store) SaveReport(ctx context.Context, id int64, report models.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE analyses SET status = ?, stage = '', error = '', overall_score = ?, report = ?, updated_at = ? WHERE id = ?`,
		StatusCompleted, report.OverallScore, string(raw), now, id)
	if err != nil {
		return fmt.Errorf("save report for analysis %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save report for analysis %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.logger.Info().Int64("analysisId", id).Int("overallScore", report.OverallScore).Msg("report saved")
	return nil
}

// Get returns one analysis by ID, including its report if completed.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, status, stage, error, overall_score, report, created_at, updated_at
		 FROM analyses WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis %d: %w", id, err)
	}
	return rec, nil
}

// List returns all analyses, newest first, without report payloads.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, status, stage, error, overall_score, created_at, updated_at
		 FROM analyses ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var score sql.NullInt64
		var createdAt, updatedAt string
		if err := rows.Scan(&rec.ID, &rec.Filename, &rec.Status, &rec.Stage, &rec.Error,
			&score, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("list analyses: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			rec.OverallScore = &v
		}
		rec.CreatedAt = parseTime(createdAt)
		rec.UpdatedAt = parseTime(updatedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetProgress computes progress over completed analyses in completion
// order. HasProgress requires at least two completed analyses.
func (s *Store) GetProgress(ctx context.Context) (Progress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT overall_score FROM analyses
		 WHERE status = ? AND overall_score IS NOT NULL ORDER BY id ASC`, StatusCompleted)
	if err != nil {
		return Progress{}, fmt.Errorf("progress: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return Progress{}, fmt.Errorf("progress: %w", err)
		}
		scores = append(scores, v)
	}
	if err := rows.Err(); err != nil {
		return Progress{}, err
	}

	p := Progress{TotalAnalyses: len(scores)}
	if len(scores) == 0 {
		return p, nil
	}

	sum := 0
	for _, v := range scores {
		sum += v
	}
	p.FirstScore = scores[0]
	p.LatestScore = scores[len(scores)-1]
	p.AverageScore = float64(sum) / float64(len(scores))
	if len(scores) >= 2 {
		p.HasProgress = true
		p.Improvement = p.LatestScore - p.FirstScore
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var score sql.NullInt64
	var report sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&rec.ID, &rec.Filename, &rec.Status, &rec.Stage, &rec.Error,
		&score, &report, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if score.Valid {
		v := int(score.Int64)
		rec.OverallScore = &v
	}
	if report.Valid && report.String != "" {
		var r models.Report
		if err := json.Unmarshal([]byte(report.String), &r); err != nil {
			return nil, fmt.Errorf("decode stored report: %w", err)
		}
		rec.Report = &r
	}
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
