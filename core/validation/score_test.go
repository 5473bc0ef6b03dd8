package validation

import "testing"

func TestRelevance_AllKeywordsMatch(t *testing.T) {
	keywords := map[string]struct{}{"quickly": {}}

	confidence := Relevance(keywords, "it moved quickly today")

	if confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %f", confidence)
	}
}

func TestRelevance_EmptyKeywordSet(t *testing.T) {
	if confidence := Relevance(map[string]struct{}{}, "any content"); confidence != 0 {
		t.Errorf("expected confidence 0 for empty keyword set, got %f", confidence)
	}
}

func TestRelevance_PartialMatch(t *testing.T) {
	keywords := map[string]struct{}{
		"apple":  {},
		"banana": {},
		"cherry": {},
		"grape":  {},
	}

	confidence := Relevance(keywords, "apple and banana pie")

	if confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", confidence)
	}
}

func TestRelevance_SubstringContainmentCounts(t *testing.T) {
	// "cat" inside "catalog" still counts; the metric is substring
	// containment, not token matching
	keywords := map[string]struct{}{"cat": {}}

	confidence := Relevance(keywords, "browse the catalog")

	if confidence != 1.0 {
		t.Errorf("expected substring match to count, got %f", confidence)
	}
}

func TestRelevance_NoMatches(t *testing.T) {
	keywords := map[string]struct{}{"zebra": {}}

	if confidence := Relevance(keywords, "nothing relevant here"); confidence != 0 {
		t.Errorf("expected confidence 0, got %f", confidence)
	}
}
