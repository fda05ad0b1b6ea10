package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aadya284/mood-enhancer/internal/config"
	"github.com/aadya284/mood-enhancer/internal/handler"
	"github.com/aadya284/mood-enhancer/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.OpenAIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, serving fallback recommendations only")
	}
	if cfg.UnsplashKey == "" {
		slog.Warn("UNSPLASH_ACCESS_KEY not set, using static image pool")
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	usedImages := service.NewUsedImagesCache()
	imageService := service.NewImageService(cfg.UnsplashKey, usedImages)
	openAI := service.NewOpenAIService(cfg.OpenAIKey)
	recommendationService := service.NewRecommendationService(openAI, imageService)
	newsService := service.NewNewsService()

	// Initialize handler
	h := handler.New(handler.Deps{
		Cfg:             cfg,
		Recommendations: recommendationService,
		News:            newsService,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	slog.Info("server stopped gracefully")
}
