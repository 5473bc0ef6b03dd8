// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, search, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-based cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger implementation
// - search/serper: Search provider client with rate limiting
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
package infrastructure
