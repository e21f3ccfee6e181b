package core

// anonymizer.go replaces target column values with synthetic substitutes.
//
// Substitution is per-cell and context-free: two cells holding the same
// original value get independent replacements, and no consistency is kept
// across columns (a name and an email in the same row need not correspond).
//
// The generator is deliberately not seeded. Row selection is reproducible
// across runs (see sampler.go); the substituted values are not. The original
// tool had the same asymmetry, so it is preserved here rather than silently
// making the whole output deterministic.

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

// maxSyntheticNumber bounds generated replacement integers at nine digits.
const maxSyntheticNumber = 999999999

// Anonymizer substitutes synthetic values into table cells.
type Anonymizer struct {
	faker *gofakeit.Faker
}

// NewAnonymizer builds an anonymizer backed by a randomly seeded generator.
func NewAnonymizer() *Anonymizer {
	return &Anonymizer{faker: gofakeit.New(0)}
}

// AnonymizeColumns overwrites every cell of the named columns in place.
// Text cells become synthetic person names; number and missing cells become
// synthetic non-negative integers. Columns absent from the table are skipped
// silently (they cannot occur after ValidateColumns).
func (a *Anonymizer) AnonymizeColumns(t *Table, columns []string) {
	for _, col := range columns {
		pos, ok := t.ColumnIndex(col)
		if !ok {
			continue
		}
		for _, row := range t.Rows {
			if pos < len(row) {
				row[pos] = a.replacement(row[pos])
			}
		}
	}
}

// replacement picks the substitute for a single cell, dispatching on the
// cell's kind: text gets a name, everything else gets a number.
func (a *Anonymizer) replacement(c Cell) Cell {
	if c.Kind == CellText {
		return Cell{Kind: CellText, Raw: a.faker.Name()}
	}
	return Cell{
		Kind: CellNumber,
		Raw:  strconv.Itoa(a.faker.Number(0, maxSyntheticNumber)),
	}
}
