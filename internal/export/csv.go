// Package export serializes entity lists to CSV. Quoting follows RFC 4180:
// a field is quoted only when it contains a comma, quote or line break, with
// embedded quotes doubled.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no data to export")

// CSV writes a header row followed by one row per item. The row function
// must return exactly one string per header; a mismatch aborts the export.
func CSV[T any](w io.Writer, items []T, headers []string, row func(T) []string) error {
	if len(items) == 0 {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, item := range items {
		fields := row(item)
		if len(fields) != len(headers) {
			return fmt.Errorf("row %d has %d fields, expected %d", i, len(fields), len(headers))
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFile exports to a file path, creating or truncating the target.
func CSVFile[T any](path string, items []T, headers []string, row func(T) []string) error {
	if len(items) == 0 {
		return ErrNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := CSV(f, items, headers, row); err != nil {
		return err
	}
	return f.Sync()
}
