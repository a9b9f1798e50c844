package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chatservice "saarthi/internal/chat"
	chathandler "saarthi/internal/chat/handler"
	chatmetrics "saarthi/internal/chat/metrics"
	"saarthi/internal/llm"
	"saarthi/internal/platform/config"
	"saarthi/internal/platform/httpserver"
	"saarthi/internal/platform/logger"
	"saarthi/internal/platform/middleware"
	platformredis "saarthi/internal/platform/redis"
	schemehandler "saarthi/internal/scheme/handler"
	schemestore "saarthi/internal/scheme/store"
	"saarthi/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	catalog, err := schemestore.LoadFile(cfg.SchemesFile)
	if err != nil {
		log.Error("failed to load scheme catalog", "file", cfg.SchemesFile, "error", err)
		os.Exit(1)
	}
	log.Info("scheme catalog loaded", "file", cfg.SchemesFile, "schemes", catalog.Len())

	var llmClient llm.Client
	if cfg.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; chat will answer with rule-based fallbacks only")
		llmClient = llm.NewDisabledClient()
	} else {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		if err != nil {
			log.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		breaker := circuit.New("gemini", circuit.WithFailureThreshold(5))
		llmClient = llm.NewGuardedClient(gemini, breaker, log)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable; translation caching disabled", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		llmClient = llm.NewCachedClient(llmClient, redisClient.Client, cfg.Redis.TTL, log)
		log.Info("translation cache enabled", "ttl", cfg.Redis.TTL)
	}

	chatMetrics := chatmetrics.New()
	chatSvc := chatservice.New(llmClient, catalog, log, chatMetrics)

	router := chi.NewRouter()
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(chimiddleware.Recoverer)
	if cfg.ChatRateLimit > 0 {
		router.Use(middleware.RateLimit(cfg.ChatRateLimit))
	}

	schemehandler.New(catalog, log).Register(router)
	chathandler.New(chatSvc, log, cfg.IsProduction()).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting saarthi server", "addr", cfg.Addr, "env", cfg.Environment)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
