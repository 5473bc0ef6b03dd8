// ABOUTME: Relevance scoring computes a confidence value from keyword containment
// ABOUTME: Recall-style substring matching against the record's comparison text

package validation

import "strings"

// Relevance returns the fraction of keywords contained in content as
// substrings, a confidence value in [0,1]. An empty keyword set scores 0.
//
// This is substring containment, not exact token matching: a keyword that
// happens to be a substring of an unrelated word in the content still
// counts as a match. The imprecision is intentional and kept as-is.
func Relevance(keywords map[string]struct{}, content string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	matched := 0
	for keyword := range keywords {
		if strings.Contains(content, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}
