package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTable_Header(t *testing.T) {
	input := "name,age\nAlice,30\nBob,40\n"

	table, err := LoadTable(strings.NewReader(input), LoadOptions{Delimiter: ',', Header: true})
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}

	wantCols := []string{"name", "age"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", table.Columns, wantCols)
	}
	for i, c := range wantCols {
		if table.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, table.Columns[i], c)
		}
	}
	if table.RowCount() != 2 {
		t.Fatalf("rows = %d, want 2", table.RowCount())
	}
	if table.Rows[0][0].Raw != "Alice" || table.Rows[0][0].Kind != CellText {
		t.Errorf("row 0 col 0 = %+v, want text Alice", table.Rows[0][0])
	}
	if table.Rows[0][1].Raw != "30" || table.Rows[0][1].Kind != CellNumber {
		t.Errorf("row 0 col 1 = %+v, want number 30", table.Rows[0][1])
	}
}

func TestLoadTable_NoHeader(t *testing.T) {
	input := "Alice,30\nBob,40\nCarol,50\n"

	table, err := LoadTable(strings.NewReader(input), LoadOptions{Delimiter: ',', Header: false})
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}

	if table.Columns[0] != "column_0" || table.Columns[1] != "column_1" {
		t.Errorf("columns = %v, want [column_0 column_1]", table.Columns)
	}
	if table.RowCount() != 3 {
		t.Errorf("rows = %d, want 3 (first row is data, not header)", table.RowCount())
	}
}

func TestLoadTable_SemicolonDelimiter(t *testing.T) {
	input := "name;age\nAlice;30\n"

	table, err := LoadTable(strings.NewReader(input), LoadOptions{Delimiter: ';', Header: true})
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.Columns[1] != "age" {
		t.Errorf("columns = %v, want name and age split on semicolon", table.Columns)
	}
	if table.Rows[0][1].Raw != "30" {
		t.Errorf("row 0 col 1 = %q, want 30", table.Rows[0][1].Raw)
	}
}

func TestLoadTable_BOM(t *testing.T) {
	input := "\xEF\xBB\xBFname,age\nAlice,30\n"

	table, err := LoadTable(strings.NewReader(input), LoadOptions{Delimiter: ',', Header: true})
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.Columns[0] != "name" {
		t.Errorf("first column = %q, want name (BOM must be stripped)", table.Columns[0])
	}
}

func TestLoadTable_RaggedRow(t *testing.T) {
	input := "name,age\nAlice,30\nBob\n"

	_, err := LoadTable(strings.NewReader(input), LoadOptions{Delimiter: ',', Header: true})
	if err == nil {
		t.Fatal("LoadTable() expected error for ragged row")
	}
	if !strings.Contains(err.Error(), "invalid csv") {
		t.Errorf("error = %q, want invalid csv", err)
	}
}

func TestLoadTable_EmptyInput(t *testing.T) {
	_, err := LoadTable(strings.NewReader(""), LoadOptions{Delimiter: ',', Header: true})
	if err == nil {
		t.Fatal("LoadTable() expected error for empty input")
	}
	if !strings.Contains(err.Error(), "empty file") {
		t.Errorf("error = %q, want empty file", err)
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CellKind
	}{
		{"plain word", "Alice", CellText},
		{"integer", "30", CellNumber},
		{"negative integer", "-7", CellNumber},
		{"decimal", "3.14", CellNumber},
		{"scientific", "-2e5", CellNumber},
		{"empty", "", CellMissing},
		{"whitespace only", "   ", CellMissing},
		{"mixed", "12 Main St", CellText},
		{"currency is text", "$5", CellText},
		{"thousands separator is text", "1,000", CellText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCell(tt.raw)
			if got.Kind != tt.want {
				t.Errorf("ClassifyCell(%q).Kind = %v, want %v", tt.raw, got.Kind, tt.want)
			}
			if got.Raw != tt.raw {
				t.Errorf("ClassifyCell(%q).Raw = %q, raw field must be preserved", tt.raw, got.Raw)
			}
		})
	}
}

func TestValidateColumns(t *testing.T) {
	table := &Table{Columns: []string{"name", "age"}}

	if err := ValidateColumns(table, []string{"name"}); err != nil {
		t.Errorf("ValidateColumns() error = %v, want nil", err)
	}

	err := ValidateColumns(table, []string{"name", "email"})
	if err == nil {
		t.Fatal("ValidateColumns() expected error for missing column")
	}
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("error type = %T, want *ColumnNotFoundError", err)
	}
	if cnf.Column != "email" {
		t.Errorf("missing column = %q, want email", cnf.Column)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("error = %q, must name the missing column", err)
	}
}

func TestLoadFile_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	content := []byte("name,city\nJos\xE9,Paris\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path, "ISO-8859-1", LoadOptions{Delimiter: ',', Header: true})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if table.Rows[0][0].Raw != "José" {
		t.Errorf("decoded cell = %q, want José", table.Rows[0][0].Raw)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"), "UTF-8",
		LoadOptions{Delimiter: ',', Header: true})
	if err == nil {
		t.Fatal("LoadFile() expected error for missing file")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error type = %T, want *LoadError", err)
	}
}
