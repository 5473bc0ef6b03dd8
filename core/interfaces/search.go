// ABOUTME: Search client contract for the external search provider
// ABOUTME: The validation pipeline depends on this interface, never on a concrete transport

package interfaces

import (
	"context"

	"content-review-api/core/domain"
)

// SearchClient queries the external search provider for ranked result
// snippets. Implementations fail with a *errors.ProviderError on missing
// credentials, transport failure, or a non-success response.
//
// An empty result set is a valid "no results" outcome, not an error.
// Callers must treat provider errors and empty result sets as inconclusive
// (pending review), never as rejection.
type SearchClient interface {
	Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
}

// ContentEnricher fills a record's empty text fields from its URL before
// validation. Enrichment failures are non-fatal; the record is validated
// with whatever content it has.
type ContentEnricher interface {
	EnrichRecord(ctx context.Context, record *domain.Record) error
}
