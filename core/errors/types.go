// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// InputError represents a malformed or empty input dataset.
// It is the only error class surfaced to the user as a blocking message;
// an InputError aborts the whole import and leaves the previous working
// set untouched.
type InputError struct {
	Message string
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %s", e.Message)
}

// ProviderError represents a failure of the external search provider:
// missing credential, transport failure, or a non-success response.
// Provider errors are caught per record and downgraded to a pending
// review state; they never abort a batch.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search provider %s error: %d - %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("search provider %s error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying transport error, if any
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsInput checks if an error is an InputError
func IsInput(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
