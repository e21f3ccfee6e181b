package core

import (
	"fmt"
	"regexp"
	"strings"
)

// numericRegex validates that a string is a plain numeric value.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CellKind classifies a cell value for the anonymization dispatch.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
	CellMissing
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellMissing:
		return "missing"
	default:
		return "value"
	}
}

// Cell is a single table value. Raw holds the field exactly as it appeared in
// the input file; cells that are never anonymized are written back verbatim.
type Cell struct {
	Kind CellKind
	Raw  string
}

// ClassifyCell types a raw CSV field.
//
// An empty or whitespace-only field is missing, a field that parses as a plain
// number (no currency symbols, no thousands separators) is a number, and
// everything else is text. This mirrors how a schema-free CSV load infers
// cell types.
func ClassifyCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return Cell{Kind: CellMissing, Raw: raw}
	case numericRegex.MatchString(trimmed):
		return Cell{Kind: CellNumber, Raw: raw}
	default:
		return Cell{Kind: CellText, Raw: raw}
	}
}

// Table is the in-memory representation of a CSV file: named columns in file
// order, each row a positional slice across all columns.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or false if the
// column does not exist. Column names are matched exactly.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// SyntheticColumnName builds the positional column name used when the input
// has no header row: column_0, column_1, ...
func SyntheticColumnName(i int) string {
	return fmt.Sprintf("column_%d", i)
}
