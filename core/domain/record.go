// ABOUTME: Record domain model represents one imported row of scraped web content
// ABOUTME: Known text fields plus a residual map for arbitrary CSV columns

package domain

import (
	"strings"
	"time"
)

// ReviewStatus is the tri-state review outcome for a record
type ReviewStatus string

const (
	// StatusPending means the record needs (or is awaiting) manual review
	StatusPending ReviewStatus = "pending"

	// StatusApproved means the record was verified as relevant
	StatusApproved ReviewStatus = "approved"

	// StatusRejected means the record appears irrelevant or insufficient
	StatusRejected ReviewStatus = "rejected"
)

// IsValid reports whether s is one of the three defined statuses
func (s ReviewStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Record represents one imported row of scraped content
type Record struct {
	// Index is the 1-based input row position (header excluded).
	// Indices are stable: they never change after import, regardless of
	// filtering or validation failures.
	Index int

	// Known text fields used for query building and relevance scoring
	Title       string
	Content     string
	Description string
	Text        string
	URL         string

	// Extra holds any additional CSV columns keyed by header name
	Extra map[string]string

	// Review is the validation outcome; nil until the record is validated
	Review *ReviewState
}

// textFieldNames are the known columns, in query-building priority order
var textFieldNames = []string{"title", "content", "description", "text"}

// Field returns the value of a named column.
// Known fields are matched case-insensitively; anything else is looked up
// in the Extra map under its original header name.
func (r *Record) Field(name string) string {
	switch strings.ToLower(name) {
	case "title":
		return r.Title
	case "content":
		return r.Content
	case "description":
		return r.Description
	case "text":
		return r.Text
	case "url":
		return r.URL
	}
	return r.Extra[name]
}

// SetField assigns a value to a named column, routing known fields to their
// struct fields and everything else to the Extra map.
func (r *Record) SetField(name, value string) {
	switch strings.ToLower(name) {
	case "title":
		r.Title = value
	case "content":
		r.Content = value
	case "description":
		r.Description = value
	case "text":
		r.Text = value
	case "url":
		r.URL = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[name] = value
	}
}

// HasText reports whether any of the four comparison fields is non-empty
func (r *Record) HasText() bool {
	for _, name := range textFieldNames {
		if strings.TrimSpace(r.Field(name)) != "" {
			return true
		}
	}
	return false
}

// IsBlank reports whether every field of the record, including extras, is
// empty. Blank rows are dropped at import and never validated.
func (r *Record) IsBlank() bool {
	if r.HasText() || strings.TrimSpace(r.URL) != "" {
		return false
	}
	for _, v := range r.Extra {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the record. The Extra map, the ReviewState,
// and its Issues slice are all duplicated, so mutating the clone (or the
// original) cannot be observed through the other.
func (r *Record) Clone() Record {
	out := *r
	if r.Extra != nil {
		out.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = v
		}
	}
	if r.Review != nil {
		review := *r.Review
		if r.Review.Issues != nil {
			review.Issues = make([]string, len(r.Review.Issues))
			copy(review.Issues, r.Review.Issues)
		}
		out.Review = &review
	}
	return out
}

// ReviewState holds the validation outcome attached to a record.
// It is created once at validation time; a human override afterwards changes
// Status only, never Confidence or Message.
type ReviewState struct {
	Status     ReviewStatus
	Confidence float64
	Message    string
	Issues     []string
	ImportedAt time.Time
}
