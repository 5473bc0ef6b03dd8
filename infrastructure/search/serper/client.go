// ABOUTME: Serper-style search provider client implementing the SearchClient interface
// ABOUTME: POSTs queries with an API-Key header and parses organic result snippets

package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"content-review-api/core/domain"
	coreerrors "content-review-api/core/errors"
	"content-review-api/core/interfaces"
	"content-review-api/pkg/config"
	"golang.org/x/time/rate"
)

const providerName = "serper"

// cacheTTL is how long a query's results are reused
const cacheTTL = time.Hour

// Client queries the search provider over HTTP.
// Outbound calls are rate limited; identical queries are served from cache.
type Client struct {
	deps     interfaces.Dependencies
	endpoint string
	apiKey   string
	limiter  *rate.Limiter
}

// NewClient creates a search provider client.
// A missing API key does not fail construction: every Search call then
// returns a ProviderError, which the pipeline downgrades to pending.
func NewClient(deps interfaces.Dependencies, cfg config.SearchConfig) *Client {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	return &Client{
		deps:     deps,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// searchRequest is the provider's query body
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// searchResponse is the provider's result envelope.
// An absent or empty organic list is a valid "no results" outcome.
type searchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search sends the query and returns ranked result snippets.
// Failures are reported as *errors.ProviderError so callers can treat them
// as inconclusive rather than as rejection.
func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	if c.apiKey == "" {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "missing API key",
		}
	}

	cacheKey := fmt.Sprintf("search:%s:%d", query, num)
	if c.deps.Cache != nil {
		if data, err := c.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached []domain.SearchResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "rate limit wait cancelled",
			Err:      err,
		}
	}

	payload, err := json.Marshal(searchRequest{Q: query, Num: num})
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "failed to encode query",
			Err:      err,
		}
	}

	headers := map[string]string{"API-Key": c.apiKey}
	resp, err := c.deps.HTTPClient.Post(ctx, c.endpoint, headers, bytes.NewReader(payload))
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ProviderError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    "non-success response",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "failed to read response",
			Err:      err,
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, &coreerrors.ProviderError{
			Provider: providerName,
			Message:  "failed to parse response",
			Err:      err,
		}
	}

	results := make([]domain.SearchResult, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		results = append(results, domain.SearchResult{
			Title:   r.Title,
			Snippet: r.Snippet,
		})
	}

	if c.deps.Cache != nil && len(results) > 0 {
		if data, err := json.Marshal(results); err == nil {
			_ = c.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return results, nil
}
