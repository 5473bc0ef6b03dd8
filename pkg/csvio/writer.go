// ABOUTME: CSV export renders records with every cell double-quote-wrapped
// ABOUTME: Header is the union of record fields in first-seen order

package csvio

import (
	"fmt"
	"io"
	"strings"

	"content-review-api/core/domain"
)

// reviewColumns are appended to the header only when review fields are
// explicitly requested; internal review state never leaks otherwise.
var reviewColumns = []string{"status", "confidence", "message"}

// knownFields are checked against each record when building the header
// union, since enrichment can fill fields that were absent from the input.
var knownFields = []string{"title", "content", "description", "text", "url"}

// Export writes records as CSV. The header is the union of the dataset's
// columns (first-seen import order) and any known field populated on a
// record but missing from those columns. Every cell is wrapped in double
// quotes with embedded double quotes escaped by doubling.
func Export(w io.Writer, records []domain.Record, columns []string, includeReview bool) error {
	header := headerUnion(records, columns)

	out := header
	if includeReview {
		out = append(append([]string{}, header...), reviewColumns...)
	}
	if err := writeRow(w, out); err != nil {
		return err
	}

	for _, record := range records {
		row := make([]string, 0, len(out))
		for _, col := range header {
			row = append(row, record.Field(col))
		}
		if includeReview {
			row = append(row, reviewCells(record)...)
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func headerUnion(records []domain.Record, columns []string) []string {
	header := make([]string, 0, len(columns))
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[strings.ToLower(col)]; dup {
			continue
		}
		seen[strings.ToLower(col)] = struct{}{}
		header = append(header, col)
	}
	for _, record := range records {
		for _, name := range knownFields {
			if _, ok := seen[name]; ok {
				continue
			}
			if record.Field(name) != "" {
				seen[name] = struct{}{}
				header = append(header, name)
			}
		}
	}
	return header
}

func reviewCells(record domain.Record) []string {
	if record.Review == nil {
		return []string{"", "", ""}
	}
	return []string{
		string(record.Review.Status),
		fmt.Sprintf("%.2f", record.Review.Confidence),
		record.Review.Message,
	}
}

func writeRow(w io.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
