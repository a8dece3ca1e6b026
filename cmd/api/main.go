package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"adforge/internal/creative"
	"adforge/internal/http/handlers"
	"adforge/internal/http/httpapi"
	"adforge/internal/infra"
	"adforge/internal/layout"
	"adforge/internal/providers/imagegen"
	"adforge/internal/providers/textgen"
	"adforge/internal/providers/vision"
	"adforge/internal/session"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	textClient, err := textgen.NewClient(textgen.Options{
		APIKey:         cfg.HFAPIToken,
		BaseURL:        cfg.ProviderBaseURL,
		Model:          cfg.TextModel,
		Logger:         &logger,
		RequestTimeout: cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build text client")
	}
	imageClient, err := imagegen.NewClient(imagegen.Options{
		APIKey:         cfg.HFAPIToken,
		BaseURL:        cfg.ProviderBaseURL,
		Model:          cfg.ImageModel,
		Logger:         &logger,
		RequestTimeout: cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build image client")
	}
	visionClient, err := vision.NewClient(vision.Options{
		APIKey:         cfg.HFAPIToken,
		BaseURL:        cfg.ProviderBaseURL,
		Model:          cfg.VisionModel,
		Attempts:       cfg.VisionRetryAttempts,
		Backoff:        cfg.VisionRetryBackoff,
		Logger:         &logger,
		RequestTimeout: cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build vision client")
	}

	engine := layout.NewEngine(layout.LoadFonts(cfg.FontPath))
	svc := creative.NewService(textClient, imageClient, visionClient, engine, logger)
	sessions := session.NewStore()

	app := handlers.NewApp(cfg, logger, sessions, svc)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
