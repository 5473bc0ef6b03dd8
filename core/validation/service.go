// ABOUTME: Validation service orchestrates the per-record scoring pipeline
// ABOUTME: Query building, search, keyword extraction, scoring, and classification

package validation

import (
	"context"
	"fmt"
	"time"

	"content-review-api/core/domain"
	"content-review-api/core/interfaces"
)

// Config holds tunables for the validation pipeline
type Config struct {
	// ResultCount is the number of search results requested per query
	ResultCount int

	// Timeout bounds each external search call. Zero disables the bound
	// and leaves only the transport default.
	Timeout time.Duration
}

// DefaultConfig returns the default pipeline configuration
func DefaultConfig() Config {
	return Config{
		ResultCount: 5,
		Timeout:     10 * time.Second,
	}
}

// Service runs the validation pipeline for individual records
type Service struct {
	deps     interfaces.Dependencies
	search   interfaces.SearchClient
	enricher interfaces.ContentEnricher
	cfg      Config
}

// NewService creates a validation service. The enricher may be nil, in which
// case records are validated with whatever content they were imported with.
func NewService(deps interfaces.Dependencies, search interfaces.SearchClient, enricher interfaces.ContentEnricher, cfg Config) *Service {
	if cfg.ResultCount <= 0 {
		cfg.ResultCount = DefaultConfig().ResultCount
	}
	return &Service{
		deps:     deps,
		search:   search,
		enricher: enricher,
		cfg:      cfg,
	}
}

// ValidateRecord runs the full pipeline for one record and returns its
// review state. It never returns an error: every failure along the chain is
// absorbed into a pending state with zero confidence and an explanatory
// message, so a batch always completes.
func (s *Service) ValidateRecord(ctx context.Context, record *domain.Record) domain.ReviewState {
	state := domain.ReviewState{
		Status:     domain.StatusPending,
		ImportedAt: time.Now(),
	}

	if s.enricher != nil && !record.HasText() && record.URL != "" {
		if err := s.enricher.EnrichRecord(ctx, record); err != nil {
			s.logWarn("Content enrichment failed", map[string]interface{}{
				"index": record.Index,
				"url":   record.URL,
				"error": err.Error(),
			})
		}
	}

	query := BuildQuery(record)
	if query == "" {
		state.Message = "Record has no searchable text content"
		state.Issues = append(state.Issues, state.Message)
		return state
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	results, err := s.search.Search(ctx, query, s.cfg.ResultCount)
	if err != nil {
		// Inconclusive, not a rejection: a transient provider problem must
		// never silently become a false "rejected".
		state.Message = "Search validation unavailable - needs manual review"
		state.Issues = append(state.Issues, fmt.Sprintf("Search provider error: %v", err))
		s.logWarn("Search call failed", map[string]interface{}{
			"index": record.Index,
			"error": err.Error(),
		})
		return state
	}

	if len(results) == 0 {
		state.Message = "No search results found - needs manual review"
		state.Issues = append(state.Issues, state.Message)
		return state
	}

	keywords := ExtractKeywords(results)
	if len(keywords) == 0 {
		state.Message = "Search results contained no significant keywords"
		state.Issues = append(state.Issues, state.Message)
		return state
	}

	confidence := Relevance(keywords, ContentText(record))
	status, message := Classify(confidence)

	state.Status = status
	state.Confidence = confidence
	state.Message = message

	p := confidencePercent(confidence)
	switch status {
	case domain.StatusRejected:
		state.Issues = append(state.Issues, fmt.Sprintf("Content flagged as irrelevant (confidence %d%%)", p))
	case domain.StatusPending:
		state.Issues = append(state.Issues, fmt.Sprintf("Manual review required (confidence %d%%)", p))
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Record validated", map[string]interface{}{
			"index":      record.Index,
			"status":     string(status),
			"confidence": confidence,
			"keywords":   len(keywords),
		})
	}

	return state
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
