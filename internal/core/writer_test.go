package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := &Table{
		Columns: []string{"name", "age"},
		Rows: [][]Cell{
			{{CellText, "Alice"}, {CellNumber, "30"}},
			{{CellText, "Bob"}, {CellNumber, "40"}},
		},
	}

	if err := WriteFile(table, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "name,age\nAlice,30\nBob,40\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", string(got), want)
	}
}

func TestWriteFile_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := &Table{Columns: []string{"name", "age"}}

	if err := WriteFile(table, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "name,age\n" {
		t.Errorf("output = %q, want header-only CSV", string(got))
	}
}

func TestWriteFile_QuotesSpecialFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := &Table{
		Columns: []string{"note"},
		Rows: [][]Cell{
			{{CellText, `contains, comma`}},
			{{CellText, `contains "quote"`}},
		},
	}

	if err := WriteFile(table, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "note\n\"contains, comma\"\n\"contains \"\"quote\"\"\"\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", string(got), want)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	err := WriteFile(&Table{Columns: []string{"a"}}, path)
	if err == nil {
		t.Fatal("WriteFile() expected error for unwritable path")
	}
	var se *SaveError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *SaveError", err)
	}
}
