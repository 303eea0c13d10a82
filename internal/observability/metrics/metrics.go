// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vocably"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    prometheus.Counter
	AnalysesActive   prometheus.Gauge
	AnalysesSuccess  prometheus.Counter
	AnalysesFailed   *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	StageDuration    *prometheus.HistogramVec

	// Upload metrics
	UploadBytesReceived prometheus.Counter
	UploadsRejected     *prometheus.CounterVec

	// Collaborator metrics
	CollaboratorLatency *prometheus.HistogramVec
	CollaboratorErrors  *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec

	// Score distribution
	OverallScore prometheus.Histogram
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		// Analysis metrics
		AnalysesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of analyses started",
		}),
		AnalysesActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "analyses_active",
			Help:      "Number of analyses currently processing",
		}),
		AnalysesSuccess: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_success_total",
			Help:      "Total number of successfully completed analyses",
		}),
		AnalysesFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_failed_total",
			Help:      "Total number of failed analyses",
		}, []string{"stage"}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		}),
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"stage"}),

		// Upload metrics
		UploadBytesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_bytes_received_total",
			Help:      "Total video bytes received via upload",
		}),
		UploadsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_rejected_total",
			Help:      "Total number of rejected uploads",
		}, []string{"reason"}),

		// Collaborator metrics
		CollaboratorLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collaborator_latency_seconds",
			Help:      "Latency of collaborator calls in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"collaborator"}),
		CollaboratorErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_errors_total",
			Help:      "Total number of collaborator call errors",
		}, []string{"collaborator"}),

		// Kafka publish metrics
		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),

		// Score distribution
		OverallScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overall_score",
			Help:      "Distribution of overall scores across completed analyses",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
	}
}

// RecordAnalysisStart records an analysis starting.
func (m *Metrics) RecordAnalysisStart() {
	m.AnalysesTotal.Inc()
	m.AnalysesActive.Inc()
}

// RecordAnalysisSuccess records a completed analysis with its score.
func (m *Metrics) RecordAnalysisSuccess(overallScore int, durationSeconds float64) {
	m.AnalysesActive.Dec()
	m.AnalysisDuration.Observe(durationSeconds)
	m.AnalysesSuccess.Inc()
	m.OverallScore.Observe(float64(overallScore))
}

// RecordAnalysisFailure records a failed analysis and the stage it failed in.
func (m *Metrics) RecordAnalysisFailure(stage string, durationSeconds float64) {
	m.AnalysesActive.Dec()
	m.AnalysisDuration.Observe(durationSeconds)
	m.AnalysesFailed.WithLabelValues(stage).Inc()
}

// RecordStage records the duration of one pipeline stage.
func (m *Metrics) RecordStage(stage string, durationSeconds float64) {
	m.StageDuration.WithLabelValues(stage).Observe(durationSeconds)
}

// RecordUploadReceived records video bytes received.
func (m *Metrics) RecordUploadReceived(bytes int64) {
	m.UploadBytesReceived.Add(float64(bytes))
}

// RecordUploadRejected records a rejected upload.
func (m *Metrics) RecordUploadRejected(reason string) {
	m.UploadsRejected.WithLabelValues(reason).Inc()
}

// RecordCollaborator records a collaborator call.
func (m *Metrics) RecordCollaborator(collaborator string, err error, latencySeconds float64) {
	m.CollaboratorLatency.WithLabelValues(collaborator).Observe(latencySeconds)
	if err != nil {
		m.CollaboratorErrors.WithLabelValues(collaborator).Inc()
	}
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
