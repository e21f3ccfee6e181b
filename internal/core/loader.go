package core

// loader.go parses the (already decoded) input stream into a Table.
//
// Parsing is strict about row shape: a row with a different field count than
// the header fails the whole load, matching the original tool's behavior of
// rejecting malformed files rather than padding them.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadOptions controls how the input stream is parsed.
type LoadOptions struct {
	// Delimiter separates fields in the input (output is always comma).
	Delimiter rune

	// Header indicates whether the first row names the columns. When false,
	// names are synthesized as column_0, column_1, ... and the first row is
	// treated as data.
	Header bool
}

// LoadTable parses CSV data from r into a Table. The reader must yield UTF-8;
// callers with other encodings wrap r with DecodeReader first.
func LoadTable(r io.Reader, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(NewBOMSkippingReader(r))
	cr.Comma = opts.Delimiter

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty file")
	}

	var columns []string
	var dataRecords [][]string
	if opts.Header {
		columns = records[0]
		dataRecords = records[1:]
	} else {
		columns = make([]string, len(records[0]))
		for i := range columns {
			columns[i] = SyntheticColumnName(i)
		}
		dataRecords = records
	}

	rows := make([][]Cell, 0, len(dataRecords))
	for _, rec := range dataRecords {
		row := make([]Cell, len(rec))
		for i, field := range rec {
			row[i] = ClassifyCell(field)
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// LoadFile opens path, decodes it from the given charset label, and parses it
// into a Table. Any failure is wrapped in a LoadError.
func LoadFile(path, encoding string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	decoded, err := DecodeReader(f, encoding)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	table, err := LoadTable(decoded, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return table, nil
}

// ValidateColumns checks that every target column exists in the table.
// Returns a ColumnNotFoundError naming the first missing column. Runs once,
// after load and before sampling.
func ValidateColumns(t *Table, targets []string) error {
	for _, col := range targets {
		if _, ok := t.ColumnIndex(col); !ok {
			return &ColumnNotFoundError{Column: col, Available: t.Columns}
		}
	}
	return nil
}
