package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestInputError_Error(t *testing.T) {
	err := &InputError{Message: "CSV file is empty"}

	if err.Error() != "input error: CSV file is empty" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}

func TestProviderError_Error_WithStatusCode(t *testing.T) {
	err := &ProviderError{Provider: "serper", StatusCode: 503, Message: "unavailable"}

	expected := "search provider serper error: 503 - unavailable"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestProviderError_Error_WithoutStatusCode(t *testing.T) {
	err := &ProviderError{Provider: "serper", Message: "missing API key"}

	expected := "search provider serper error: missing API key"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ProviderError{Provider: "serper", Message: "request failed", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ProviderError should unwrap to the transport error")
	}
}

func TestIsInput(t *testing.T) {
	err := &InputError{Message: "missing header row"}

	if !IsInput(err) {
		t.Error("IsInput should return true for InputError")
	}
	if IsInput(errors.New("other")) {
		t.Error("IsInput should return false for other errors")
	}
}

func TestIsProvider_Wrapped(t *testing.T) {
	err := fmt.Errorf("validate record: %w", &ProviderError{Provider: "serper", Message: "timeout"})

	if !IsProvider(err) {
		t.Error("IsProvider should match a wrapped ProviderError")
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "record", ID: "7"}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestWrapError_NilError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError should return nil for nil error")
	}
}
