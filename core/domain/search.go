// ABOUTME: Search domain models for relevance validation
// ABOUTME: Defines the result snippet structure returned by the search provider

package domain

// SearchResult is one ranked snippet returned for a validation query.
// Both fields are optional; a result with neither contributes nothing to
// keyword extraction.
type SearchResult struct {
	// Title is the result's headline
	Title string

	// Snippet is the short excerpt shown under the headline
	Snippet string
}
