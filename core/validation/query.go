// ABOUTME: Query building derives a bounded search string from a record's text fields
// ABOUTME: Also provides the untruncated comparison text used by the relevance scorer

package validation

import (
	"strings"

	"content-review-api/core/domain"
)

// maxQueryLength bounds the search string sent to the provider
const maxQueryLength = 100

// BuildQuery concatenates the record's title, content, description, and text
// fields in that priority order, skipping empty ones, joined with single
// spaces and truncated to the first 100 characters.
//
// An empty result means the record has insufficient content for validation.
// That is a defined terminal case, not an error: callers short-circuit such
// records to a pending review with zero confidence.
func BuildQuery(record *domain.Record) string {
	joined := joinTextFields(record)
	runes := []rune(joined)
	if len(runes) > maxQueryLength {
		return string(runes[:maxQueryLength])
	}
	return joined
}

// ContentText returns the same four-field concatenation as BuildQuery but
// untruncated and lowercased. This is the haystack the relevance scorer
// matches keywords against.
func ContentText(record *domain.Record) string {
	return strings.ToLower(joinTextFields(record))
}

func joinTextFields(record *domain.Record) string {
	fields := []string{record.Title, record.Content, record.Description, record.Text}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " ")
}
