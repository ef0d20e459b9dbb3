// Package main is the entry point for the Finance Insights API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fintracker/insights/config"
	"github.com/fintracker/insights/internal/application/adapter"
	"github.com/fintracker/insights/internal/application/usecase/advisor"
	"github.com/fintracker/insights/internal/application/usecase/budget"
	"github.com/fintracker/insights/internal/infra/server/router"
	"github.com/fintracker/insights/internal/integration/adapters"
	"github.com/fintracker/insights/internal/integration/entrypoint/controller"
	"github.com/fintracker/insights/internal/integration/entrypoint/middleware"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Insights API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the AI delegate. A missing API key is a supported mode:
	// every operation runs on the deterministic heuristics.
	var aiService adapter.AIService
	if cfg.AI.APIKey != "" {
		gemini, err := adapters.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
		if err != nil {
			slog.Error("Failed to initialize AI delegate", "error", err)
			os.Exit(1)
		}
		aiService = gemini
		slog.Info("AI delegate initialized", "model", cfg.AI.Model)
	} else {
		slog.Warn("No AI credential configured, running in heuristic-only mode")
	}

	// Initialize the optional Redis result cache.
	var resultCache adapter.ResultCache
	if cfg.Cache.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			slog.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
		resultCache = adapters.NewRedisResultCache(client, cfg.Cache.TTL)
		slog.Info("Result cache initialized", "ttl", cfg.Cache.TTL)
	}

	// Create the advisor and controllers
	budgetEngine := budget.NewEngine(cfg.Analytics.MonthsOfHistory)
	adv := advisor.New(aiService, resultCache, budgetEngine)

	healthController := controller.NewHealthController(adv.AIEnabled)
	analyticsController := controller.NewAnalyticsController(budgetEngine)
	aiController := controller.NewAIController(adv)
	aiRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)

	// Setup router
	r := router.NewRouter(healthController, analyticsController, aiController, aiRateLimiter)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
