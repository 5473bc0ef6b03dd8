// ABOUTME: Validation pool runs batch validation with bounded concurrency
// ABOUTME: Results are ordered by input index, never by completion order

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"content-review-api/core/domain"
)

// RecordValidator validates a single record into a review state
type RecordValidator interface {
	ValidateRecord(ctx context.Context, record *domain.Record) domain.ReviewState
}

// PoolConfig holds configuration for the validation pool
type PoolConfig struct {
	// MaxWorkers bounds concurrent validations. 1 means strictly
	// sequential processing in input row order.
	MaxWorkers int
}

// DefaultPoolConfig returns the default pool configuration
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MaxWorkers: 1}
}

// ValidationPool fans a batch of records out to a bounded set of workers
type ValidationPool struct {
	validator  RecordValidator
	maxWorkers int
}

// NewValidationPool creates a validation pool
func NewValidationPool(validator RecordValidator, cfg PoolConfig) *ValidationPool {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	return &ValidationPool{
		validator:  validator,
		maxWorkers: cfg.MaxWorkers,
	}
}

// ValidateBatch validates every record and returns the batch in input
// order. Each record's slot is keyed by its position, so ordering is stable
// no matter which worker finishes first or how many validations fail.
// A panicking validation is converted into a pending state; one bad record
// never aborts the batch.
func (p *ValidationPool) ValidateBatch(ctx context.Context, records []domain.Record) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)

	workers := p.maxWorkers
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pos := range jobs {
				state := p.validateSafely(ctx, &out[pos])
				out[pos].Review = &state
			}
		}()
	}

	for pos := range out {
		jobs <- pos
	}
	close(jobs)
	wg.Wait()

	return out
}

// validateSafely runs one validation, converting a panic into a pending
// state so the rest of the batch keeps going.
func (p *ValidationPool) validateSafely(ctx context.Context, record *domain.Record) (state domain.ReviewState) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("Validation failed unexpectedly: %v", r)
			state = domain.ReviewState{
				Status:     domain.StatusPending,
				Message:    msg,
				Issues:     []string{msg},
				ImportedAt: time.Now(),
			}
		}
	}()
	return p.validator.ValidateRecord(ctx, record)
}
