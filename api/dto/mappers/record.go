// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"content-review-api/api/dto/responses"
	"content-review-api/core/domain"
)

// ToRecordResponse converts a domain Record to a RecordResponse DTO
func ToRecordResponse(record *domain.Record) *responses.RecordResponse {
	if record == nil {
		return nil
	}

	response := &responses.RecordResponse{
		Index:       record.Index,
		Title:       record.Title,
		Content:     record.Content,
		Description: record.Description,
		Text:        record.Text,
		URL:         record.URL,
		Extra:       record.Extra,
	}

	if record.Review != nil {
		response.Review = &responses.ReviewResponse{
			Status:     string(record.Review.Status),
			Confidence: record.Review.Confidence,
			Message:    record.Review.Message,
			Issues:     record.Review.Issues,
			ImportedAt: record.Review.ImportedAt,
		}
	}

	return response
}

// ToRecordResponses converts a slice of domain Records, preserving order
func ToRecordResponses(records []domain.Record) []responses.RecordResponse {
	out := make([]responses.RecordResponse, 0, len(records))
	for i := range records {
		if response := ToRecordResponse(&records[i]); response != nil {
			out = append(out, *response)
		}
	}
	return out
}
