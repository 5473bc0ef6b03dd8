// ABOUTME: Record handlers for the Huma API
// ABOUTME: HTTP endpoints for dataset import, review listing, overrides, and export

package handlers

import (
	"bytes"
	"context"
	"net/http"

	"content-review-api/api/dto/mappers"
	"content-review-api/api/dto/responses"
	"content-review-api/core/domain"
	"content-review-api/core/store"
	"content-review-api/pkg/csvio"
	"github.com/danielgtaylor/huma/v2"
)

// BatchValidator validates an imported batch, preserving input order
type BatchValidator interface {
	ValidateBatch(ctx context.Context, records []domain.Record) []domain.Record
}

// RecordsHandler handles record-related HTTP requests
type RecordsHandler struct {
	store     *store.RecordStore
	validator BatchValidator
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(recordStore *store.RecordStore, validator BatchValidator) *RecordsHandler {
	return &RecordsHandler{
		store:     recordStore,
		validator: validator,
	}
}

// RegisterRoutes registers all record-related routes
func (h *RecordsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "importDataset",
		Method:      http.MethodPost,
		Path:        "/import",
		Summary:     "Import a CSV dataset",
		Description: "Parses a CSV document, validates every record against live search results, and replaces the working set",
		Tags:        []string{"Records"},
	}, h.ImportDataset)

	huma.Register(api, huma.Operation{
		OperationID: "listRecords",
		Method:      http.MethodGet,
		Path:        "/records",
		Summary:     "List records",
		Description: "Returns the working set in input order, optionally filtered by review status",
		Tags:        []string{"Records"},
	}, h.ListRecords)

	huma.Register(api, huma.Operation{
		OperationID: "getRecord",
		Method:      http.MethodGet,
		Path:        "/records/{index}",
		Summary:     "Get a record",
		Tags:        []string{"Records"},
	}, h.GetRecord)

	huma.Register(api, huma.Operation{
		OperationID: "approveRecord",
		Method:      http.MethodPost,
		Path:        "/records/{index}/approve",
		Summary:     "Approve a record",
		Description: "Human override: marks the record approved without touching confidence or message",
		Tags:        []string{"Review"},
	}, h.ApproveRecord)

	huma.Register(api, huma.Operation{
		OperationID: "rejectRecord",
		Method:      http.MethodPost,
		Path:        "/records/{index}/reject",
		Summary:     "Reject a record",
		Description: "Human override: marks the record rejected without touching confidence or message",
		Tags:        []string{"Review"},
	}, h.RejectRecord)

	huma.Register(api, huma.Operation{
		OperationID: "exportRecords",
		Method:      http.MethodGet,
		Path:        "/export",
		Summary:     "Export records as CSV",
		Description: "Exports the working set (optionally filtered by status) with every cell quoted; review fields are included only when requested",
		Tags:        []string{"Records"},
	}, h.ExportRecords)
}

// ImportDatasetInput is the raw CSV upload
type ImportDatasetInput struct {
	RawBody []byte `contentType:"text/csv" doc:"CSV document with a header row"`
}

// ImportDatasetOutput is the import result
type ImportDatasetOutput struct {
	Body responses.ImportResponse
}

// ImportDataset handles POST /import
func (h *RecordsHandler) ImportDataset(ctx context.Context, input *ImportDatasetInput) (*ImportDatasetOutput, error) {
	records, columns, err := csvio.Import(bytes.NewReader(input.RawBody))
	if err != nil {
		// The previous working set stays untouched on input errors
		return nil, toHumaError(err)
	}

	validated := h.validator.ValidateBatch(ctx, records)
	h.store.Replace(validated, columns)

	return &ImportDatasetOutput{
		Body: responses.ImportResponse{
			Imported: len(validated),
			Records:  mappers.ToRecordResponses(validated),
		},
	}, nil
}

// ListRecordsInput carries the optional status filter
type ListRecordsInput struct {
	Status string `query:"status" enum:"pending,approved,rejected," doc:"Filter by review status"`
}

// ListRecordsOutput is the record listing
type ListRecordsOutput struct {
	Body responses.ListRecordsResponse
}

// ListRecords handles GET /records
func (h *RecordsHandler) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := h.filteredRecords(input.Status)
	if err != nil {
		return nil, err
	}

	return &ListRecordsOutput{
		Body: responses.ListRecordsResponse{
			Records: mappers.ToRecordResponses(records),
			Total:   len(records),
		},
	}, nil
}

// GetRecordInput identifies one record by its stable index
type GetRecordInput struct {
	Index int `path:"index" minimum:"1" doc:"Stable 1-based input row index"`
}

// GetRecordOutput is a single record
type GetRecordOutput struct {
	Body responses.RecordResponse
}

// GetRecord handles GET /records/{index}
func (h *RecordsHandler) GetRecord(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error) {
	record, err := h.store.Get(input.Index)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GetRecordOutput{Body: *mappers.ToRecordResponse(&record)}, nil
}

// OverrideInput identifies the record being overridden
type OverrideInput struct {
	Index int `path:"index" minimum:"1" doc:"Stable 1-based input row index"`
}

// OverrideOutput is the record after the override
type OverrideOutput struct {
	Body responses.RecordResponse
}

// ApproveRecord handles POST /records/{index}/approve
func (h *RecordsHandler) ApproveRecord(ctx context.Context, input *OverrideInput) (*OverrideOutput, error) {
	return h.override(input.Index, domain.StatusApproved)
}

// RejectRecord handles POST /records/{index}/reject
func (h *RecordsHandler) RejectRecord(ctx context.Context, input *OverrideInput) (*OverrideOutput, error) {
	return h.override(input.Index, domain.StatusRejected)
}

func (h *RecordsHandler) override(index int, status domain.ReviewStatus) (*OverrideOutput, error) {
	record, err := h.store.SetStatus(index, status)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &OverrideOutput{Body: *mappers.ToRecordResponse(&record)}, nil
}

// ExportRecordsInput carries export options
type ExportRecordsInput struct {
	Status        string `query:"status" enum:"pending,approved,rejected," doc:"Filter by review status"`
	IncludeReview bool   `query:"include_review" doc:"Append review status, confidence, and message columns"`
}

// ExportRecordsOutput is the raw CSV document
type ExportRecordsOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// ExportRecords handles GET /export
func (h *RecordsHandler) ExportRecords(ctx context.Context, input *ExportRecordsInput) (*ExportRecordsOutput, error) {
	records, err := h.filteredRecords(input.Status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := csvio.Export(&buf, records, h.store.Columns(), input.IncludeReview); err != nil {
		return nil, toHumaError(err)
	}

	return &ExportRecordsOutput{
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	}, nil
}

func (h *RecordsHandler) filteredRecords(status string) ([]domain.Record, error) {
	if status == "" {
		return h.store.All(), nil
	}

	reviewStatus := domain.ReviewStatus(status)
	if !reviewStatus.IsValid() {
		return nil, huma.Error400BadRequest("status must be one of pending, approved, rejected")
	}
	return h.store.ByStatus(reviewStatus), nil
}
