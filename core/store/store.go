// ABOUTME: RecordStore holds the current working set of reviewed records
// ABOUTME: Pipeline writes review states; the API writes status via explicit overrides only

package store

import (
	"strconv"
	"sync"

	"content-review-api/core/domain"
	"content-review-api/core/errors"
)

// RecordStore is the in-memory working set of imported records.
// A new import replaces the whole set; nothing is durable.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.Record
	columns []string
}

// NewRecordStore creates an empty record store
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Replace swaps in a freshly imported and validated working set.
// The previous set is discarded entirely.
func (s *RecordStore) Replace(records []domain.Record, columns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.columns = columns
}

// All returns a deep copy of every record in input order.
// Snapshots share nothing with the store, so readers are safe against a
// concurrent override.
func (s *RecordStore) All() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.records))
	for i := range s.records {
		out[i] = s.records[i].Clone()
	}
	return out
}

// ByStatus returns records whose review status matches, in input order
func (s *RecordStore) ByStatus(status domain.ReviewStatus) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, 0)
	for _, r := range s.records {
		if r.Review != nil && r.Review.Status == status {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Get returns the record with the given input index
func (s *RecordStore) Get(index int) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].Index == index {
			return s.records[i].Clone(), nil
		}
	}
	return domain.Record{}, &errors.NotFoundError{Resource: "record", ID: strconv.Itoa(index)}
}

// SetStatus applies a human override to a record's review status.
// Only approved and rejected are valid override targets. Overrides change
// status only, never confidence or message, and may be repeated: there is
// no lock-in, a reviewer can always change their mind.
func (s *RecordStore) SetStatus(index int, status domain.ReviewStatus) (domain.Record, error) {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return domain.Record{}, errors.WrapError(
			&errors.InputError{Message: "override status must be approved or rejected"},
			"set status",
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Index == index {
			if s.records[i].Review == nil {
				s.records[i].Review = &domain.ReviewState{}
			}
			s.records[i].Review.Status = status
			return s.records[i].Clone(), nil
		}
	}
	return domain.Record{}, &errors.NotFoundError{Resource: "record", ID: strconv.Itoa(index)}
}

// Columns returns the dataset's column names in first-seen order
func (s *RecordStore) Columns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of records in the working set
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
