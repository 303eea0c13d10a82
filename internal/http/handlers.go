package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Uday1017/Vocably/internal/observability/metrics"
	"github.com/Uday1017/Vocably/internal/store"
)

// Video extensions accepted for upload.
var allowedExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

// Runner starts background processing for an accepted analysis.
type Runner interface {
	Run(id int64, filename, videoPath string)
}

// Store is the subset of the analysis store the API needs.
type Store interface {
	Create(ctx context.Context, filename string) (int64, error)
	Get(ctx context.Context, id int64) (*store.Record, error)
	List(ctx context.Context) ([]store.Record, error)
	GetProgress(ctx context.Context) (store.Progress, error)
}

// Handler serves the analysis API.
type Handler struct {
	logger    zerolog.Logger
	store     Store
	runner    Runner
	uploadDir string
	maxBytes  int64
	metrics   *metrics.Metrics
}

// NewHandler creates the API handler.
func NewHandler(logger zerolog.Logger, st Store, runner Runner, uploadDir string, maxBytes int64) *Handler {
	return &Handler{
		logger:    logger.With().Str("component", "api").Logger(),
		store:     st,
		runner:    runner,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
		metrics:   metrics.DefaultMetrics,
	}
}

// handleCreateAnalysis accepts a multipart video upload, persists it,
// and starts background processing. Responds 202 with the analysis ID.
func (h *Handler) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("video")
	if err != nil {
		h.metrics.RecordUploadRejected("missing_file")
		respondError(w, http.StatusBadRequest, "missing video file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		h.metrics.RecordUploadRejected("unsupported_format")
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported video format %q, expected one of: mp4, avi, mov, mkv", ext))
		return
	}

	id, err := h.store.Create(r.Context(), header.Filename)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create analysis")
		respondError(w, http.StatusInternalServerError, "failed to create analysis")
		return
	}

	videoPath := filepath.Join(h.uploadDir, fmt.Sprintf("%d%s", id, ext))
	written, err := h.saveUpload(file, videoPath)
	if err != nil {
		h.logger.Error().Err(err).Int64("analysisId", id).Msg("failed to save upload")
		respondError(w, http.StatusInternalServerError, "failed to save upload")
		return
	}
	h.metrics.RecordUploadReceived(written)

	h.logger.Info().
		Int64("analysisId", id).
		Str("filename", header.Filename).
		Int64("bytes", written).
		Msg("upload accepted")

	go h.runner.Run(id, header.Filename, videoPath)

	respondJSON(w, http.StatusAccepted, map[string]any{
		"id":     id,
		"status": store.StatusPending,
	})
}

func (h *Handler) saveUpload(src io.Reader, dst string) (int64, error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	return io.Copy(out, src)
}

// handleListAnalyses returns all analyses, newest first.
func (h *Handler) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list analyses")
		respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if list == nil {
		list = []store.Record{}
	}
	respondJSON(w, http.StatusOK, list)
}

// handleGetAnalysis returns one analysis with its report if completed.
func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	rec, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Int64("analysisId", id).Msg("failed to get analysis")
		respondError(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// handleGetProgress returns score progress across completed analyses.
func (h *Handler) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProgress(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to compute progress")
		respondError(w, http.StatusInternalServerError, "failed to compute progress")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
