package serper

import (
	"context"
	"io"
	"strings"
	"time"

	"content-review-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error)
	calls    int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	m.calls++
	if m.postFunc != nil {
		return m.postFunc(ctx, url, headers, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is an in-memory Cache for tests
type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errNotFound
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (e *notFoundError) Error() string { return "key not found" }
