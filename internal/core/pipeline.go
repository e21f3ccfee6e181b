package core

// pipeline.go sequences the four run steps: detect encoding, load,
// sample+anonymize, save. The whole run is synchronous and aborts on the
// first error; there is no retry and no partial-result recovery. An earlier
// step failing leaves no output file, a failure mid-write may leave a
// truncated one.

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
)

// Options configures a single anonymization run.
type Options struct {
	InputFile  string
	OutputFile string

	// SampleSize is the fraction of rows to keep, in [0.0, 1.0].
	SampleSize float64

	// Columns are the names of columns to anonymize. All must exist in the
	// loaded table.
	Columns []string

	// Header indicates whether the input's first row names the columns.
	Header bool

	// Encoding is the input charset label. Empty means auto-detect.
	Encoding string

	// Delimiter separates input fields. Output is always comma.
	Delimiter rune

	// Seed drives row selection. The CLI always passes DefaultSeed; tests
	// may vary it.
	Seed int64
}

// Pipeline runs one sample-and-anonymize pass over a CSV file.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
	anon   *Anonymizer
}

// NewPipeline validates opts and builds a Pipeline. Validation happens here,
// before any file is opened: a missing input file, an out-of-range sample
// fraction, or an empty column list never reaches the load step.
func NewPipeline(opts Options, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if opts.InputFile == "" {
		return nil, NewParameterError("input_file", nil, "path must not be empty")
	}
	if _, err := os.Stat(opts.InputFile); err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}
	if opts.OutputFile == "" {
		return nil, NewParameterError("output_file", nil, "path must not be empty")
	}
	if math.IsNaN(opts.SampleSize) || opts.SampleSize < 0.0 || opts.SampleSize > 1.0 {
		return nil, NewParameterError("sample_size", opts.SampleSize, "must be between 0.0 and 1.0")
	}
	if len(opts.Columns) == 0 {
		return nil, NewParameterError("columns", nil, "at least one column is required")
	}
	for _, col := range opts.Columns {
		if col == "" {
			return nil, NewParameterError("columns", nil, "column names must not be empty")
		}
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	return &Pipeline{
		opts:   opts,
		logger: logger,
		anon:   NewAnonymizer(),
	}, nil
}

// Run executes the pipeline: detect, load, sample+anonymize, save. The first
// failing step logs the error and returns it unchanged.
func (p *Pipeline) Run(ctx context.Context) error {
	encoding := p.opts.Encoding
	if encoding == "" {
		detected, err := DetectEncoding(p.opts.InputFile)
		if err != nil {
			wrapped := &LoadError{Path: p.opts.InputFile, Err: err}
			p.logger.Error("encoding detection failed", "error", wrapped)
			return wrapped
		}
		encoding = detected
		p.logger.Info("detected input encoding", "encoding", encoding)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	table, err := LoadFile(p.opts.InputFile, encoding, LoadOptions{
		Delimiter: p.opts.Delimiter,
		Header:    p.opts.Header,
	})
	if err != nil {
		p.logger.Error("failed to load data", "error", err)
		return err
	}
	p.logger.Info("loaded input file",
		"rows", table.RowCount(),
		"columns", len(table.Columns),
	)

	if err := ValidateColumns(table, p.opts.Columns); err != nil {
		p.logger.Error("target column missing", "error", err)
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	sampled := SampleTable(table, p.opts.SampleSize, p.opts.Seed)
	p.anon.AnonymizeColumns(sampled, p.opts.Columns)
	if err := sameColumns(table, sampled); err != nil {
		wrapped := &AnonymizeError{Err: err}
		p.logger.Error("failed to anonymize data", "error", wrapped)
		return wrapped
	}
	p.logger.Info("sampled and anonymized rows",
		"sampled_rows", sampled.RowCount(),
		"anonymized_columns", len(p.opts.Columns),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := WriteFile(sampled, p.opts.OutputFile); err != nil {
		p.logger.Error("failed to save data", "error", err)
		return err
	}
	p.logger.Info("output saved", "path", p.opts.OutputFile)

	return nil
}

// sameColumns verifies that the anonymized table kept the input's column set
// and order, the invariant the writer relies on.
func sameColumns(in, out *Table) error {
	if len(in.Columns) != len(out.Columns) {
		return fmt.Errorf("column count changed: had %d, got %d", len(in.Columns), len(out.Columns))
	}
	for i, c := range in.Columns {
		if out.Columns[i] != c {
			return fmt.Errorf("column %d changed: had %q, got %q", i, c, out.Columns[i])
		}
	}
	return nil
}
