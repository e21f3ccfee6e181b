package core

// sampler.go draws the deterministic row sample.
//
// Selection uses a fixed-seed generator so two runs over the same input and
// fraction pick the same rows. The permutation also shuffles the output: rows
// keep no particular order relative to the input file.

import (
	"math"
	"math/rand"
)

// DefaultSeed is the fixed seed for row selection, kept constant so sampling
// is reproducible for identical input size and fraction.
const DefaultSeed int64 = 42

// SampleTable returns a new table holding round(fraction × rows) rows drawn
// uniformly without replacement. The input table is not mutated; rows in the
// result are copies.
func SampleTable(t *Table, fraction float64, seed int64) *Table {
	n := int(math.Round(fraction * float64(t.RowCount())))

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(t.RowCount())

	rows := make([][]Cell, 0, n)
	for _, idx := range perm[:n] {
		row := make([]Cell, len(t.Rows[idx]))
		copy(row, t.Rows[idx])
		rows = append(rows, row)
	}

	columns := append([]string(nil), t.Columns...)
	return &Table{Columns: columns, Rows: rows}
}
