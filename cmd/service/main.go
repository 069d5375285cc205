package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/client/gradio"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/client/translate"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/infra"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/pkg/tx"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/pkg/validator"
	db "github.com/MustafaAKbulut55/fullstack-ai-chat/internal/repository/postgres"
	cache "github.com/MustafaAKbulut55/fullstack-ai-chat/internal/repository/redis"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	sentimentCache := cache.New(cfg)
	defer sentimentCache.Close()

	translateClient := translate.New(cfg)
	defer translateClient.Close()

	sentimentClient := gradio.New(cfg)
	defer sentimentClient.Close()

	vldtr := validator.New()

	handler := rest.New(dbRepo, translateClient, sentimentClient, sentimentCache, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.CORSHTTP(next, cfg.Cors.AllowedOrigins)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.RequestIDHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	router.Post("/api/messages", handler.PostMessage)
	router.Get("/api/messages", handler.GetMessages)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
