// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, storage, logging and LLM access.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with browser-like headers
// - llm/openai: OpenAI-compatible chat-completion summarizer
// - logger/standard: Simple structured logger implementation
// - logger/logrus: Logrus-based JSON logger with file rotation
// - storage/memory: In-memory vault store
// - storage/sqlite: SQLite-backed vault store
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	config := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(config)
//
// # HTTP Client
//
// The HTTP client sends browser-like headers so content sites serve the
// same markup they serve real readers:
//
//	client := standard.NewStandardHTTPClient(15 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Processing request", map[string]interface{}{
//	    "topic": "go concurrency",
//	    "urls":  3,
//	})
package infrastructure
