// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, vault storage, LLM and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Vault contains vault storage configuration
	Vault VaultConfig

	// LLM contains language model provider configuration
	LLM LLMConfig

	// Log contains logging configuration
	Log LogConfig

	// Scrape contains page-fetching configuration
	Scrape ScrapeConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// VaultConfig holds vault storage configuration
type VaultConfig struct {
	// StoreType specifies the vault backend (sqlite/memory)
	StoreType string

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string
}

// LLMConfig holds language model provider configuration. An empty APIKey
// disables LLM summarization and the service falls back to the composer.
type LLMConfig struct {
	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint (empty uses the default)
	BaseURL string

	// Model is the chat model identifier
	Model string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Backend specifies the logger implementation (standard/logrus)
	Backend string

	// FilePath enables rotating file output when non-empty (logrus backend)
	FilePath string
}

// ScrapeConfig holds page-fetching configuration
type ScrapeConfig struct {
	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Vault: VaultConfig{
			StoreType:  getEnvOrDefault("VAULT_STORE", "memory"),
			SQLitePath: getEnvOrDefault("VAULT_SQLITE_PATH", "vault.db"),
		},
		LLM: LLMConfig{
			APIKey:  getEnvOrDefault("LLM_API_KEY", ""),
			BaseURL: getEnvOrDefault("LLM_BASE_URL", ""),
			Model:   getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		},
		Log: LogConfig{
			Backend:  getEnvOrDefault("LOG_BACKEND", "standard"),
			FilePath: getEnvOrDefault("LOG_FILE", ""),
		},
		Scrape: ScrapeConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("SCRAPE_TIMEOUT_SECONDS", 15),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Vault.StoreType != "sqlite" && c.Vault.StoreType != "memory" {
		return errors.New("vault store must be 'sqlite' or 'memory'")
	}

	if c.Vault.StoreType == "sqlite" && c.Vault.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite vault store")
	}

	if c.Log.Backend != "standard" && c.Log.Backend != "logrus" {
		return errors.New("log backend must be 'standard' or 'logrus'")
	}

	if c.Scrape.TimeoutSeconds < 1 {
		return errors.New("scrape timeout must be at least 1 second")
	}

	return nil
}
