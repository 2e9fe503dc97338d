package record

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ExportCSV serializes the full record list into CSV: one header row followed
// by one row per record, columns in fieldNames order. Field values containing
// separators, quotes or newlines are quoted per RFC 4180; the writer, not
// string joining, owns the escaping.
func ExportCSV(list []Record, header []string, fieldNames []string) (string, error) {
	if len(header) != len(fieldNames) {
		return "", fmt.Errorf("csv export: header has %d columns, fields %d", len(header), len(fieldNames))
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("csv export: %w", err)
	}
	row := make([]string, len(fieldNames))
	for _, r := range list {
		for i, name := range fieldNames {
			row[i] = Stringify(r[name])
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("csv export: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv export: %w", err)
	}
	return buf.String(), nil
}
