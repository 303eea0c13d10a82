// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the full service configuration.
type Config struct {
	Service       ServiceConfig
	Upload        UploadConfig
	STT           STTConfig
	Grammar       GrammarConfig
	Vision        VisionConfig
	Store         StoreConfig
	Kafka         KafkaConfig
	Job           JobConfig
	Observability ObservabilityConfig
}

// ServiceConfig holds service identity and listen addresses.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsAddr string
}

// UploadConfig holds video upload limits.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// STTConfig holds speech-to-text provider settings.
type STTConfig struct {
	Provider      string // mock, google
	LanguageCode  string
	SampleRateHz  int
	AudioEncoding string
}

// GrammarConfig holds LanguageTool settings.
type GrammarConfig struct {
	URL      string
	Language string
}

// VisionConfig holds visual-analysis sidecar settings.
type VisionConfig struct {
	URL     string
	Enabled bool
}

// StoreConfig holds database settings.
type StoreConfig struct {
	Path string
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Brokers        []string
	TopicCompleted string
	TopicFailed    string
	Principal      string
	Enabled        bool
}

// JobConfig holds pipeline settings.
type JobConfig struct {
	Timeout time.Duration
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, applying defaults for
// missing or invalid values.
func Load() *Config {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-vocably")

	return &Config{
		Service: ServiceConfig{
			Principal:   principal,
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),
		},
		Upload: UploadConfig{
			Dir:      envOrDefault("UPLOAD_DIR", "uploads"),
			MaxBytes: envOrDefaultInt64("UPLOAD_MAX_BYTES", 200*1024*1024),
		},
		STT: STTConfig{
			Provider:      envOrDefault("STT_PROVIDER", "mock"),
			LanguageCode:  envOrDefault("STT_LANGUAGE_CODE", "en-US"),
			SampleRateHz:  envOrDefaultInt("STT_SAMPLE_RATE_HZ", 16000),
			AudioEncoding: envOrDefault("STT_AUDIO_ENCODING", "LINEAR16"),
		},
		Grammar: GrammarConfig{
			URL:      envOrDefault("GRAMMAR_URL", "http://localhost:8081"),
			Language: envOrDefault("GRAMMAR_LANGUAGE", "en-US"),
		},
		Vision: VisionConfig{
			URL:     envOrDefault("VISION_URL", "http://localhost:8082"),
			Enabled: envOrDefaultBool("VISION_ENABLED", true),
		},
		Store: StoreConfig{
			Path: envOrDefault("STORE_PATH", "vocably.db"),
		},
		Kafka: KafkaConfig{
			Brokers:        envOrDefaultSlice("KAFKA_BROKERS", nil),
			TopicCompleted: envOrDefault("KAFKA_TOPIC_COMPLETED", "analysis.completed"),
			TopicFailed:    envOrDefault("KAFKA_TOPIC_FAILED", "analysis.failed"),
			Principal:      envOrDefault("KAFKA_PRINCIPAL", principal),
			Enabled:        envOrDefaultBool("KAFKA_ENABLED", false),
		},
		Job: JobConfig{
			Timeout: envOrDefaultDuration("JOB_TIMEOUT", 10*time.Minute),
		},
		Observability: ObservabilityConfig{
			LogLevel:  envOrDefault("LOG_LEVEL", "info"),
			LogFormat: envOrDefault("LOG_FORMAT", "json"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultSlice(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
