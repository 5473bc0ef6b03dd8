package validation

import (
	"context"

	"content-review-api/core/domain"
)

// mockSearchClient is a mock implementation of the SearchClient interface
type mockSearchClient struct {
	searchFunc func(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
	calls      []string
}

func (m *mockSearchClient) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	m.calls = append(m.calls, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, num)
	}
	return nil, nil
}

// mockEnricher is a mock implementation of the ContentEnricher interface
type mockEnricher struct {
	enrichFunc func(ctx context.Context, record *domain.Record) error
}

func (m *mockEnricher) EnrichRecord(ctx context.Context, record *domain.Record) error {
	if m.enrichFunc != nil {
		return m.enrichFunc(ctx, record)
	}
	return nil
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
