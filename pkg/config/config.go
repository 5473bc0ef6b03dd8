// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, search provider, cache, and validation

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

	// Search contains search provider configuration
	Search SearchConfig

	// Validation contains validation pipeline configuration
	Validation ValidationConfig

	// Cache contains cache configuration
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// SearchConfig holds search provider configuration
type SearchConfig struct {
	// APIKey is the search provider credential. An empty key does not fail
	// startup; it degrades every validation to a pending review instead.
	APIKey string

	// Endpoint is the search provider URL
	Endpoint string

	// ResultCount is the number of results requested per query
	ResultCount int

	// TimeoutSeconds bounds each search call
	TimeoutSeconds int

	// RateLimit is the maximum outbound search requests per second
	RateLimit int
}

// ValidationConfig holds validation pipeline configuration
type ValidationConfig struct {
	// Workers bounds concurrent record validations; 1 is strictly sequential
	Workers int

	// EnrichContent enables fetching page content for records that have a
	// URL but no text fields
	EnrichContent bool
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Search: SearchConfig{
			APIKey:         os.Getenv("SEARCH_API_KEY"),
			Endpoint:       getEnvOrDefault("SEARCH_ENDPOINT", "https://google.serper.dev/search"),
			ResultCount:    getEnvAsIntOrDefault("SEARCH_RESULT_COUNT", 5),
			TimeoutSeconds: getEnvAsIntOrDefault("SEARCH_TIMEOUT", 10),
			RateLimit:      getEnvAsIntOrDefault("SEARCH_RATE_LIMIT", 5),
		},
		Validation: ValidationConfig{
			Workers:       getEnvAsIntOrDefault("VALIDATION_WORKERS", 1),
			EnrichContent: getEnvAsBoolOrDefault("ENRICH_CONTENT", false),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
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

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
// A missing search API key is deliberately not a validation failure: its
// absence degrades every validation to pending rather than blocking startup.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Search.Endpoint == "" {
		return errors.New("search endpoint cannot be empty")
	}

	if c.Search.ResultCount < 1 {
		return errors.New("search result count must be at least 1")
	}

	if c.Validation.Workers < 1 {
		return errors.New("validation workers must be at least 1")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
