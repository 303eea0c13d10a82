package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Uday1017/Vocably/internal/app"
	"github.com/Uday1017/Vocably/internal/config"
	"github.com/Uday1017/Vocably/internal/events"
	vocablyhttp "github.com/Uday1017/Vocably/internal/http"
	"github.com/Uday1017/Vocably/internal/observability"
	"github.com/Uday1017/Vocably/internal/service/grammar"
	"github.com/Uday1017/Vocably/internal/service/job"
	"github.com/Uday1017/Vocably/internal/service/media"
	"github.com/Uday1017/Vocably/internal/service/stt"
	"github.com/Uday1017/Vocably/internal/service/stt/google"
	sttmock "github.com/Uday1017/Vocably/internal/service/stt/mock"
	"github.com/Uday1017/Vocably/internal/service/visual"
	"github.com/Uday1017/Vocably/internal/store"
)

func main() {
	cfg := config.Load()

	application := app.New(cfg)
	logger := application.Logger

	if err := application.Start(); err != nil {
		logger.Fatal().Err(err).Msg("application startup failed")
	}

	st, err := store.Open(logger, cfg.Store.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open store")
	}
	defer st.Close()

	// Kafka publisher with separate topics for completed and failed analyses
	publisher := events.New(&events.Config{
		Enabled:        cfg.Kafka.Enabled,
		Brokers:        cfg.Kafka.Brokers,
		TopicCompleted: cfg.Kafka.TopicCompleted,
		TopicFailed:    cfg.Kafka.TopicFailed,
		Principal:      cfg.Kafka.Principal,
	})
	defer publisher.Close()

	extractor, err := media.NewFFmpeg(logger, media.DefaultSpeechFormat())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize audio extractor")
	}

	ctx := context.Background()
	transcriber, err := newTranscriber(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("provider", cfg.STT.Provider).Msg("failed to initialize STT adapter")
	}
	defer transcriber.Close()

	checker := grammar.NewLanguageTool(logger, cfg.Grammar.URL, cfg.Grammar.Language)

	var analyzer visual.Analyzer
	if cfg.Vision.Enabled {
		analyzer = visual.NewClient(logger, cfg.Vision.URL)
	} else {
		logger.Info().Msg("visual analysis disabled, reports will be text-only")
	}

	runner := job.NewRunner(logger, st, publisher, job.Collaborators{
		Media:   extractor,
		STT:     transcriber,
		Grammar: checker,
		Vision:  analyzer,
	}, cfg.Job.Timeout)

	obsServer := observability.NewServer(cfg.Service.MetricsAddr, st.Ping)
	obsServer.Start()

	handler := vocablyhttp.NewHandler(logger, st, runner, cfg.Upload.Dir, cfg.Upload.MaxBytes)
	apiServer := &http.Server{
		Addr:    ":" + cfg.Service.HTTPPort,
		Handler: vocablyhttp.NewRouter(handler),
	}

	go func() {
		logger.Info().Str("port", cfg.Service.HTTPPort).Msg("Vocably API listening")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("api serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("api shutdown failed")
	}
	if err := obsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("observability shutdown failed")
	}
	application.Shutdown()
}

// newTranscriber selects the STT adapter from configuration. The mock
// adapter keeps the service runnable without Google credentials.
func newTranscriber(ctx context.Context, cfg *config.Config) (stt.Transcriber, error) {
	switch cfg.STT.Provider {
	case "google":
		return google.New(ctx, google.Config{
			LanguageCode:  cfg.STT.LanguageCode,
			SampleRateHz:  cfg.STT.SampleRateHz,
			AudioEncoding: cfg.STT.AudioEncoding,
		})
	default:
		return sttmock.New(), nil
	}
}
