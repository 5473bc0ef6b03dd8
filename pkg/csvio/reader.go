// ABOUTME: CSV import parses an uploaded dataset into domain records
// ABOUTME: Header row required; blank rows are dropped silently; failures are InputErrors

package csvio

import (
	"encoding/csv"
	"io"
	"strings"

	"content-review-api/core/domain"
	"content-review-api/core/errors"
)

// Import parses a CSV document into records. The first row is the required
// header; arbitrary additional columns are permitted and land in each
// record's Extra map. Rows whose cells are all empty are dropped silently.
//
// Record indices are 1-based input row positions (header excluded) and
// remain stable after blank rows are dropped, so a dataset with a blank
// second row yields indices 1 and 3.
//
// Malformed or empty input returns an *errors.InputError; the caller aborts
// the import and keeps its previous working set.
func Import(r io.Reader) ([]domain.Record, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &errors.InputError{Message: "malformed CSV: " + err.Error()}
	}
	if len(rows) == 0 {
		return nil, nil, &errors.InputError{Message: "CSV file is empty"}
	}

	header := rows[0]
	columns := make([]string, 0, len(header))
	for _, name := range header {
		if strings.TrimSpace(name) != "" {
			columns = append(columns, name)
		}
	}
	if len(columns) == 0 {
		return nil, nil, &errors.InputError{Message: "CSV header row is empty"}
	}
	if len(rows) == 1 {
		return nil, nil, &errors.InputError{Message: "CSV contains no data rows"}
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record := domain.Record{Index: i + 1}
		for j, name := range header {
			if strings.TrimSpace(name) == "" || j >= len(row) {
				continue
			}
			record.SetField(name, row[j])
		}
		if record.IsBlank() {
			continue
		}
		records = append(records, record)
	}

	return records, columns, nil
}
