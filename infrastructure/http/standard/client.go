// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient external API calls

package standard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"content-review-api/core/interfaces"
)

const (
	getRetries  = 3
	postRetries = 2
	userAgent   = "ContentReviewAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	return c.doWithRetry(ctx, req, getRetries)
}

// Post performs an HTTP POST request with a JSON body.
// Extra headers are applied on top of the defaults; pass nil for none.
// The request is retried once on transport failure or a 5xx response, so
// a transient provider hiccup does not surface as a hard failure.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	// Buffer the body so it can be replayed on retry
	var payload []byte
	if body != nil {
		var err error
		payload, err = io.ReadAll(body)
		if err != nil {
			return nil, err
		}
	}

	var resp interfaces.Response
	var lastErr error

	for attempt := 0; attempt < postRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(100 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := c.newPostRequest(ctx, url, headers, payload)
		if err != nil {
			return nil, err
		}

		resp, lastErr = c.do(req)
		if lastErr != nil {
			continue
		}
		if resp.StatusCode() < 500 {
			return resp, nil
		}

		// Close body for retry
		resp.Body().Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode())
		resp = nil
	}

	if resp != nil {
		return resp, nil
	}
	return nil, lastErr
}

func (c *StandardHTTPClient) newPostRequest(ctx context.Context, url string, headers map[string]string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// doWithRetry performs a request with exponential backoff on transport
// failures and 5xx responses: 100ms, 200ms, 400ms.
func (c *StandardHTTPClient) doWithRetry(ctx context.Context, req *http.Request, retries int) (interfaces.Response, error) {
	var resp interfaces.Response
	var lastErr error

	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, lastErr = c.do(req)
		if lastErr != nil {
			continue
		}
		if resp.StatusCode() < 500 {
			return resp, nil
		}

		resp.Body().Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode())
		resp = nil
	}

	if resp != nil {
		return resp, nil
	}
	return nil, lastErr
}

func (c *StandardHTTPClient) do(req *http.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
