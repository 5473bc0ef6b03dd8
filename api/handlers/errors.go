// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"content-review-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsInput(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	// Provider errors are normally absorbed per record by the pipeline;
	// one reaching a handler is unexpected but still not the client's fault
	if errors.IsProvider(err) {
		return huma.Error503ServiceUnavailable("Search provider unavailable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
