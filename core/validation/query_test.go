package validation

import (
	"strings"
	"testing"

	"content-review-api/core/domain"
)

func TestBuildQuery_JoinsFieldsInPriorityOrder(t *testing.T) {
	record := &domain.Record{
		Text:        "text value",
		Description: "description value",
		Content:     "content value",
		Title:       "title value",
	}

	query := BuildQuery(record)

	expected := "title value content value description value text value"
	if query != expected {
		t.Errorf("expected %q, got %q", expected, query)
	}
}

func TestBuildQuery_SkipsEmptyFields(t *testing.T) {
	record := &domain.Record{
		Title: "only title",
		Text:  "and text",
	}

	query := BuildQuery(record)

	if query != "only title and text" {
		t.Errorf("empty fields should be skipped, got %q", query)
	}
}

func TestBuildQuery_TruncatesAt100Characters(t *testing.T) {
	record := &domain.Record{
		Title:   "A",
		Content: strings.Repeat("B", 60),
		Text:    strings.Repeat("C", 60),
	}

	query := BuildQuery(record)

	if len(query) > 100 {
		t.Errorf("query length should be at most 100, got %d", len(query))
	}
	if !strings.HasPrefix(query, "A B") {
		t.Errorf("query should start with the title, got %q", query[:10])
	}
}

func TestBuildQuery_AllFieldsEmpty(t *testing.T) {
	record := &domain.Record{URL: "https://example.com"}

	if query := BuildQuery(record); query != "" {
		t.Errorf("expected empty query, got %q", query)
	}
}

func TestContentText_LowercasesWithoutTruncation(t *testing.T) {
	record := &domain.Record{
		Title:   "MIXED Case",
		Content: strings.Repeat("X", 150),
	}

	content := ContentText(record)

	if !strings.HasPrefix(content, "mixed case") {
		t.Errorf("content should be lowercased, got %q", content[:12])
	}
	if len(content) <= 100 {
		t.Error("content text must not be truncated")
	}
}
