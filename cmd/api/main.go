// ABOUTME: Main entry point for the Content Review API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-review-api/api"
	"content-review-api/api/handlers"
	"content-review-api/core/interfaces"
	"content-review-api/core/services"
	"content-review-api/core/store"
	"content-review-api/core/validation"
	"content-review-api/core/workers"
	"content-review-api/infrastructure/cache/memory"
	"content-review-api/infrastructure/cache/redis"
	"content-review-api/infrastructure/cache/sqlite"
	stdhttp "content-review-api/infrastructure/http/standard"
	logrusadapter "content-review-api/infrastructure/logger/logrus"
	"content-review-api/infrastructure/search/serper"
	"content-review-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.NewLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting Content Review API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"workers":    cfg.Validation.Workers,
	})

	if cfg.Search.APIKey == "" {
		// Deliberately not fatal: every validation degrades to pending
		logger.Warn("Search API key not configured; all validations will be inconclusive", nil)
	}

	cache := newCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	searchClient := serper.NewClient(deps, cfg.Search)

	var enricher interfaces.ContentEnricher
	if cfg.Validation.EnrichContent {
		enricher = services.NewEnrichmentService(deps)
		logger.Info("Content enrichment enabled", nil)
	}

	validationService := validation.NewService(deps, searchClient, enricher, validation.Config{
		ResultCount: cfg.Search.ResultCount,
		Timeout:     time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
	})

	pool := workers.NewValidationPool(validationService, workers.PoolConfig{
		MaxWorkers: cfg.Validation.Workers,
	})

	recordStore := store.NewRecordStore()

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	recordsHandler := handlers.NewRecordsHandler(recordStore, pool)
	recordsHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // batch validation responds inline
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory
// when a backend cannot be reached
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
}
