// Package core contains the business logic for the Content Review API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Record, ReviewState, SearchResult)
// - validation: The scoring and classification pipeline
// - store: The in-memory working set with human override operations
// - services: Optional content enrichment from record URLs
// - workers: Bounded, order-preserving batch validation
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, search)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
package core
