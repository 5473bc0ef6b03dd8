package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"content-review-api/api/dto/responses"
	"content-review-api/core/domain"
	"content-review-api/core/store"
	"github.com/danielgtaylor/huma/v2/humatest"
)

// mockBatchValidator stamps every record with a fixed review state
type mockBatchValidator struct {
	validateFunc func(ctx context.Context, records []domain.Record) []domain.Record
}

func (m *mockBatchValidator) ValidateBatch(ctx context.Context, records []domain.Record) []domain.Record {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, records)
	}
	out := make([]domain.Record, len(records))
	for i, r := range records {
		r.Review = &domain.ReviewState{
			Status:     domain.StatusPending,
			Confidence: 0,
			Message:    "Search validation unavailable - needs manual review",
			ImportedAt: time.Now().UTC(),
		}
		out[i] = r
	}
	return out
}

func newTestAPI(t *testing.T, validator BatchValidator) (humatest.TestAPI, *store.RecordStore) {
	recordStore := store.NewRecordStore()
	handler := NewRecordsHandler(recordStore, validator)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)
	return api, recordStore
}

const sampleCSV = "title,content,url,source\n" +
	"\"First Post\",\"Some content here\",\"https://example.com/1\",\"blog\"\n" +
	",,,\n" +
	"\"Third Post\",\"More content\",\"https://example.com/3\",\"news\"\n"

func TestRecordsHandler_RegisterRoutes(t *testing.T) {
	api, _ := newTestAPI(t, &mockBatchValidator{})

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/import"] == nil || openapi.Paths["/import"].Post == nil {
		t.Error("POST /import endpoint not registered")
	}
	if openapi.Paths["/records"] == nil || openapi.Paths["/records"].Get == nil {
		t.Error("GET /records endpoint not registered")
	}
	if openapi.Paths["/export"] == nil || openapi.Paths["/export"].Get == nil {
		t.Error("GET /export endpoint not registered")
	}
}

func TestImportDataset_DropsBlankRowsKeepsIndices(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})

	resp := api.Post("/import", "Content-Type: text/csv", strings.NewReader(sampleCSV))
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body responses.ImportResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Imported != 2 {
		t.Errorf("expected 2 imported records, got %d", body.Imported)
	}
	if len(body.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(body.Records))
	}
	// The blank second row is dropped but its position stays claimed
	if body.Records[0].Index != 1 || body.Records[1].Index != 3 {
		t.Errorf("expected indices 1 and 3, got %d and %d",
			body.Records[0].Index, body.Records[1].Index)
	}
	if body.Records[0].Extra["source"] != "blog" {
		t.Errorf("unknown columns should land in extra, got %v", body.Records[0].Extra)
	}
	if recordStore.Len() != 2 {
		t.Errorf("store should hold the imported set, has %d", recordStore.Len())
	}
}

func TestImportDataset_AllPendingWhenValidationUnavailable(t *testing.T) {
	api, _ := newTestAPI(t, &mockBatchValidator{})

	resp := api.Post("/import", "Content-Type: text/csv", strings.NewReader(sampleCSV))
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body responses.ImportResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	for _, record := range body.Records {
		if record.Review == nil {
			t.Fatalf("record %d missing review state", record.Index)
		}
		if record.Review.Status != "pending" {
			t.Errorf("record %d: expected pending, got %s", record.Index, record.Review.Status)
		}
		if record.Review.Confidence != 0 {
			t.Errorf("record %d: expected confidence 0, got %v", record.Index, record.Review.Confidence)
		}
	}
}

func TestImportDataset_EmptyDocument(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	recordStore.Replace([]domain.Record{{Index: 1, Title: "kept"}}, []string{"title"})

	resp := api.Post("/import", "Content-Type: text/csv", strings.NewReader(""))
	if resp.Code != 422 {
		t.Errorf("expected status 422 for empty document, got %d", resp.Code)
	}

	// A failed import must not disturb the previous working set
	if recordStore.Len() != 1 {
		t.Errorf("previous working set should survive, has %d records", recordStore.Len())
	}
}

func seedStore(recordStore *store.RecordStore) {
	now := time.Now().UTC()
	recordStore.Replace([]domain.Record{
		{
			Index: 1, Title: "Approved Post", URL: "https://example.com/1",
			Review: &domain.ReviewState{Status: domain.StatusApproved, Confidence: 0.8,
				Message: "Content verified and relevant", ImportedAt: now},
		},
		{
			Index: 2, Title: "Pending Post", URL: "https://example.com/2",
			Review: &domain.ReviewState{Status: domain.StatusPending, Confidence: 0.55,
				Message: "Content needs manual review - moderate relevance", ImportedAt: now},
		},
		{
			Index: 3, Title: "Rejected Post", URL: "https://example.com/3",
			Review: &domain.ReviewState{Status: domain.StatusRejected, Confidence: 0.2,
				Message: "Content appears irrelevant or insufficient", ImportedAt: now},
		},
	}, []string{"title", "url"})
}

func TestListRecords_FilterByStatus(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Get("/records?status=approved")
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body responses.ListRecordsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Total != 1 {
		t.Fatalf("expected 1 approved record, got %d", body.Total)
	}
	if body.Records[0].Index != 1 {
		t.Errorf("expected record 1, got %d", body.Records[0].Index)
	}
}

func TestListRecords_InvalidStatus(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Get("/records?status=bogus")
	if resp.Code != 422 && resp.Code != 400 {
		t.Errorf("expected a client error for unknown status, got %d", resp.Code)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Get("/records/99")
	if resp.Code != 404 {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
}

func TestApproveRecord_OverridesStatusOnly(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Post("/records/2/approve")
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body responses.RecordResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Review.Status != "approved" {
		t.Errorf("expected approved, got %s", body.Review.Status)
	}
	// Confidence and message keep their machine-computed values
	if body.Review.Confidence != 0.55 {
		t.Errorf("confidence should be untouched, got %v", body.Review.Confidence)
	}
	if body.Review.Message != "Content needs manual review - moderate relevance" {
		t.Errorf("message should be untouched, got %q", body.Review.Message)
	}
}

func TestRejectRecord_Repeatable(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	for i := 0; i < 2; i++ {
		resp := api.Post("/records/3/reject")
		if resp.Code != 200 {
			t.Fatalf("reject attempt %d: expected status 200, got %d", i, resp.Code)
		}
	}

	record, err := recordStore.Get(3)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if record.Review.Status != domain.StatusRejected {
		t.Errorf("expected rejected, got %s", record.Review.Status)
	}
}

func TestApproveRecord_NotFound(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Post("/records/42/approve")
	if resp.Code != 404 {
		t.Errorf("expected status 404, got %d", resp.Code)
	}
}

func TestExportRecords_QuotedCSVWithReviewColumns(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Get("/export?include_review=true")
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", ct)
	}

	lines := strings.Split(strings.TrimRight(resp.Body.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	header := lines[0]
	for _, col := range []string{`"status"`, `"confidence"`, `"message"`} {
		if !strings.Contains(header, col) {
			t.Errorf("header missing review column %s: %s", col, header)
		}
	}
	if !strings.Contains(lines[1], `"approved"`) {
		t.Errorf("first data row should carry its status: %s", lines[1])
	}
}

func TestExportRecords_ReviewColumnsOmittedByDefault(t *testing.T) {
	api, recordStore := newTestAPI(t, &mockBatchValidator{})
	seedStore(recordStore)

	resp := api.Get("/export?status=rejected")
	if resp.Code != 200 {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	lines := strings.Split(strings.TrimRight(resp.Body.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if strings.Contains(lines[0], `"status"`) {
		t.Errorf("review columns must be opt-in: %s", lines[0])
	}
}
