// ABOUTME: Main entry point for the Summaries API server
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

	"summaries-app-api/api"
	"summaries-app-api/api/handlers"
	"summaries-app-api/core/interfaces"
	"summaries-app-api/core/scrape"
	"summaries-app-api/core/summarize"
	"summaries-app-api/core/vault"
	"summaries-app-api/infrastructure/cache/memory"
	"summaries-app-api/infrastructure/cache/redis"
	stdhttp "summaries-app-api/infrastructure/http/standard"
	"summaries-app-api/infrastructure/llm/openai"
	logruslogger "summaries-app-api/infrastructure/logger/logrus"
	stdlogger "summaries-app-api/infrastructure/logger/standard"
	storagememory "summaries-app-api/infrastructure/storage/memory"
	storagesqlite "summaries-app-api/infrastructure/storage/sqlite"
	"summaries-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	var logger interfaces.Logger
	switch cfg.Log.Backend {
	case "logrus":
		logger = logruslogger.NewLogger(cfg.Log.FilePath)
	default:
		logger = stdlogger.NewStandardLogger()
	}
	logger.Info("Starting Summaries API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"vault_store": cfg.Vault.StoreType,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Scrape.TimeoutSeconds) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// The LLM client is optional. Without an API key every request is
	// served by the deterministic composer.
	var summarizer interfaces.Summarizer
	if cfg.LLM.APIKey != "" {
		llmClient, err := openai.NewClient(cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to create LLM client: %v", err)
		}
		summarizer = llmClient
		logger.Info("LLM summarization enabled", map[string]interface{}{
			"model": cfg.LLM.Model,
		})
	} else {
		logger.Info("No LLM API key configured, using composer fallback", nil)
	}

	// Create vault store
	var store interfaces.VaultStore
	switch cfg.Vault.StoreType {
	case "sqlite":
		sqliteStore, err := storagesqlite.NewVaultStore(cfg.Vault.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open vault database: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("Using SQLite vault store", map[string]interface{}{
			"path": cfg.Vault.SQLitePath,
		})
	default:
		store = storagememory.NewVaultStore()
		logger.Info("Using in-memory vault store", nil)
	}

	// Create services
	scrapeService := scrape.NewService(deps)
	summarizeService := summarize.NewService(deps, scrapeService, summarizer)
	vaultService := vault.NewService(store, logger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	summarizeHandler := handlers.NewSummarizeHandler(summarizeService)
	summarizeHandler.RegisterRoutes(humaAPI)

	vaultHandler := handlers.NewVaultHandler(vaultService)
	vaultHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
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

	// Graceful shutdown with timeout
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
