package core

// writer.go serializes the anonymized table back to disk.
//
// Output is always UTF-8 and comma-delimited regardless of the input
// delimiter, with the header row included and no index column. A fraction of
// zero still produces a valid header-only file.

import (
	"encoding/csv"
	"os"
)

// WriteFile serializes t to path as CSV. Any failure, including the final
// flush and close, is wrapped in a SaveError.
func WriteFile(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i].Raw
			}
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return &SaveError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
