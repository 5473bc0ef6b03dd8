// Package api provides the HTTP layer for the Content Review API.
// It uses Huma v2 on top of Chi for routing, OpenAPI documentation, and
// request/response validation.
//
// The api package is organized into:
//
// - handlers: HTTP endpoint implementations
// - dto/responses: Response data transfer objects
// - dto/mappers: Domain model to DTO conversion
// - middleware: Request logging and rate limiting
package api
