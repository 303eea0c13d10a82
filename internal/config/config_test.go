package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear relevant env vars
	envVars := []string{
		"SERVICE_PRINCIPAL", "HTTP_PORT", "METRICS_ADDR", "LOG_LEVEL",
		"UPLOAD_DIR", "UPLOAD_MAX_BYTES",
		"STT_PROVIDER", "STT_LANGUAGE_CODE", "STT_SAMPLE_RATE_HZ", "STT_AUDIO_ENCODING",
		"GRAMMAR_URL", "GRAMMAR_LANGUAGE", "VISION_URL", "VISION_ENABLED",
		"STORE_PATH", "JOB_TIMEOUT",
		"KAFKA_BROKERS", "KAFKA_ENABLED", "KAFKA_PRINCIPAL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg := Load()

	// Service defaults
	if cfg.Service.Principal != "svc-vocably" {
		t.Errorf("expected default principal 'svc-vocably', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "8080" {
		t.Errorf("expected default port '8080', got %s", cfg.Service.HTTPPort)
	}
	if cfg.Service.MetricsAddr != ":9090" {
		t.Errorf("expected default metrics addr ':9090', got %s", cfg.Service.MetricsAddr)
	}

	// Upload defaults
	if cfg.Upload.Dir != "uploads" {
		t.Errorf("expected default upload dir 'uploads', got %s", cfg.Upload.Dir)
	}
	if cfg.Upload.MaxBytes != 200*1024*1024 {
		t.Errorf("expected default max upload 200MB, got %d", cfg.Upload.MaxBytes)
	}

	// STT defaults
	if cfg.STT.Provider != "mock" {
		t.Errorf("expected default STT provider 'mock', got %s", cfg.STT.Provider)
	}
	if cfg.STT.LanguageCode != "en-US" {
		t.Errorf("expected default language 'en-US', got %s", cfg.STT.LanguageCode)
	}
	if cfg.STT.SampleRateHz != 16000 {
		t.Errorf("expected default sample rate 16000, got %d", cfg.STT.SampleRateHz)
	}
	if cfg.STT.AudioEncoding != "LINEAR16" {
		t.Errorf("expected default encoding 'LINEAR16', got %s", cfg.STT.AudioEncoding)
	}

	// Collaborator defaults
	if cfg.Grammar.URL != "http://localhost:8081" {
		t.Errorf("expected default grammar URL, got %s", cfg.Grammar.URL)
	}
	if !cfg.Vision.Enabled {
		t.Error("expected vision enabled by default")
	}

	// Store and job defaults
	if cfg.Store.Path != "vocably.db" {
		t.Errorf("expected default store path 'vocably.db', got %s", cfg.Store.Path)
	}
	if cfg.Job.Timeout != 10*time.Minute {
		t.Errorf("expected default job timeout 10m, got %v", cfg.Job.Timeout)
	}

	// Kafka defaults
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled by default")
	}
	if cfg.Kafka.TopicCompleted != "analysis.completed" {
		t.Errorf("expected default completed topic, got %s", cfg.Kafka.TopicCompleted)
	}
	if cfg.Kafka.TopicFailed != "analysis.failed" {
		t.Errorf("expected default failed topic, got %s", cfg.Kafka.TopicFailed)
	}

	// Observability defaults
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Observability.LogLevel)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SERVICE_PRINCIPAL", "custom-principal")
	os.Setenv("HTTP_PORT", "9999")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("STT_PROVIDER", "google")
	os.Setenv("STT_LANGUAGE_CODE", "es-ES")
	os.Setenv("STT_SAMPLE_RATE_HZ", "8000")
	os.Setenv("UPLOAD_MAX_BYTES", "10485760")
	os.Setenv("JOB_TIMEOUT", "30m")
	os.Setenv("VISION_ENABLED", "false")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	defer func() {
		os.Unsetenv("SERVICE_PRINCIPAL")
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("STT_PROVIDER")
		os.Unsetenv("STT_LANGUAGE_CODE")
		os.Unsetenv("STT_SAMPLE_RATE_HZ")
		os.Unsetenv("UPLOAD_MAX_BYTES")
		os.Unsetenv("JOB_TIMEOUT")
		os.Unsetenv("VISION_ENABLED")
		os.Unsetenv("KAFKA_BROKERS")
	}()

	cfg := Load()

	if cfg.Service.Principal != "custom-principal" {
		t.Errorf("expected principal 'custom-principal', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "9999" {
		t.Errorf("expected port '9999', got %s", cfg.Service.HTTPPort)
	}
	if cfg.STT.Provider != "google" {
		t.Errorf("expected STT provider 'google', got %s", cfg.STT.Provider)
	}
	if cfg.STT.LanguageCode != "es-ES" {
		t.Errorf("expected language 'es-ES', got %s", cfg.STT.LanguageCode)
	}
	if cfg.STT.SampleRateHz != 8000 {
		t.Errorf("expected sample rate 8000, got %d", cfg.STT.SampleRateHz)
	}
	if cfg.Upload.MaxBytes != 10485760 {
		t.Errorf("expected max upload 10485760, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Job.Timeout != 30*time.Minute {
		t.Errorf("expected job timeout 30m, got %v", cfg.Job.Timeout)
	}
	if cfg.Vision.Enabled {
		t.Error("expected vision disabled")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "kafka-1:9092" || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("expected 2 trimmed brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Observability.LogLevel)
	}
}

func TestLoad_InvalidValues_FallbackToDefaults(t *testing.T) {
	os.Setenv("STT_SAMPLE_RATE_HZ", "not-a-number")
	os.Setenv("UPLOAD_MAX_BYTES", "invalid")
	os.Setenv("JOB_TIMEOUT", "invalid")
	os.Setenv("VISION_ENABLED", "invalid")

	defer func() {
		os.Unsetenv("STT_SAMPLE_RATE_HZ")
		os.Unsetenv("UPLOAD_MAX_BYTES")
		os.Unsetenv("JOB_TIMEOUT")
		os.Unsetenv("VISION_ENABLED")
	}()

	cfg := Load()

	// Should fall back to defaults on parse errors
	if cfg.STT.SampleRateHz != 16000 {
		t.Errorf("expected default sample rate on invalid input, got %d", cfg.STT.SampleRateHz)
	}
	if cfg.Upload.MaxBytes != 200*1024*1024 {
		t.Errorf("expected default max upload on invalid input, got %d", cfg.Upload.MaxBytes)
	}
	if cfg.Job.Timeout != 10*time.Minute {
		t.Errorf("expected default job timeout on invalid input, got %v", cfg.Job.Timeout)
	}
	if !cfg.Vision.Enabled {
		t.Error("expected default vision enabled on invalid input")
	}
}

func TestLoad_KafkaPrincipal_FallsBackToServicePrincipal(t *testing.T) {
	os.Setenv("SERVICE_PRINCIPAL", "my-service")
	os.Unsetenv("KAFKA_PRINCIPAL")

	defer os.Unsetenv("SERVICE_PRINCIPAL")

	cfg := Load()

	if cfg.Kafka.Principal != "my-service" {
		t.Errorf("expected Kafka principal to fall back to service principal, got %s", cfg.Kafka.Principal)
	}
}

func TestEnvOrDefaultBool(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		def      bool
		expected bool
	}{
		{"true string", "true", false, true},
		{"false string", "false", true, false},
		{"1", "1", false, true},
		{"0", "0", true, false},
		{"TRUE uppercase", "TRUE", false, true},
		{"invalid", "invalid", true, true},
		{"empty", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_VAR"
			if tt.envValue != "" {
				os.Setenv(key, tt.envValue)
			} else {
				os.Unsetenv(key)
			}
			defer os.Unsetenv(key)

			got := envOrDefaultBool(key, tt.def)
			if got != tt.expected {
				t.Errorf("envOrDefaultBool(%s, %v) = %v, want %v", tt.envValue, tt.def, got, tt.expected)
			}
		})
	}
}
