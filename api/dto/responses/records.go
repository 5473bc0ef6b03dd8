// ABOUTME: Response DTOs for record review API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ReviewResponse represents a record's review state in API responses
type ReviewResponse struct {
	Status     string    `json:"status" enum:"pending,approved,rejected" doc:"Review status"`
	Confidence float64   `json:"confidence" minimum:"0" maximum:"1" doc:"Relevance confidence in [0,1]"`
	Message    string    `json:"message" doc:"Human-readable explanation of the decision"`
	Issues     []string  `json:"issues,omitempty" doc:"Ordered list of issues found during validation"`
	ImportedAt time.Time `json:"imported_at" doc:"When the record was imported and validated"`
}

// RecordResponse represents an imported record in API responses
type RecordResponse struct {
	Index       int               `json:"index" doc:"Stable 1-based input row index"`
	Title       string            `json:"title,omitempty" doc:"Record title"`
	Content     string            `json:"content,omitempty" doc:"Record content"`
	Description string            `json:"description,omitempty" doc:"Record description"`
	Text        string            `json:"text,omitempty" doc:"Record text"`
	URL         string            `json:"url,omitempty" doc:"Source URL"`
	Extra       map[string]string `json:"extra,omitempty" doc:"Additional CSV columns"`
	Review      *ReviewResponse   `json:"review,omitempty" doc:"Validation outcome"`
}

// ImportResponse represents the result of importing a dataset
type ImportResponse struct {
	Imported int              `json:"imported" doc:"Number of records imported (blank rows excluded)"`
	Records  []RecordResponse `json:"records" doc:"Imported records with their review states, in input order"`
}

// ListRecordsResponse represents a filtered listing of the working set
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records" doc:"Records in input order"`
	Total   int              `json:"total" doc:"Number of records returned"`
}
