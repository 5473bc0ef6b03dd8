// ABOUTME: Keyword extraction tokenizes search result snippets into a significant-keyword set
// ABOUTME: Filters short tokens and stop words, deduplicating across all results

package validation

import (
	"regexp"
	"strings"

	"content-review-api/core/domain"
)

// stopWords are never treated as significant keywords
var stopWords = map[string]struct{}{
	"the":  {},
	"and":  {},
	"that": {},
	"this": {},
	"with": {},
	"from": {},
}

// tokens shorter than this are noise
const minKeywordLength = 4

var nonWordRun = regexp.MustCompile(`\W+`)

// ExtractKeywords tokenizes every result's title and snippet into one
// deduplicated, lowercase keyword set. Tokens are produced by splitting on
// runs of non-word characters; tokens shorter than four characters and stop
// words are discarded.
//
// An empty set is a valid outcome (empty input, or everything filtered),
// not an error.
func ExtractKeywords(results []domain.SearchResult) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, result := range results {
		parts := make([]string, 0, 2)
		if result.Title != "" {
			parts = append(parts, result.Title)
		}
		if result.Snippet != "" {
			parts = append(parts, result.Snippet)
		}
		joined := strings.ToLower(strings.Join(parts, " "))

		for _, token := range nonWordRun.Split(joined, -1) {
			if len(token) < minKeywordLength {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			keywords[token] = struct{}{}
		}
	}
	return keywords
}
