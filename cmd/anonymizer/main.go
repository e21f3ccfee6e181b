package main

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/ShadowGuardAI/dso-data-sampling-anonymizer/internal/config"
	"github.com/ShadowGuardAI/dso-data-sampling-anonymizer/internal/core"
	"github.com/ShadowGuardAI/dso-data-sampling-anonymizer/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		sampleSize float64
		columns    []string
		noHeader   bool
		encoding   string
		delimiter  string
	)

	cmd := &cobra.Command{
		Use:   "anonymizer",
		Short: "Randomly sample and anonymize data from a CSV file",
		Long: `anonymizer reads a CSV file, draws a deterministic random sample of rows,
replaces the values of selected columns with synthetic substitutes (person
names for text, random integers for everything else), and writes the result
as UTF-8 comma-delimited CSV.

Row selection is seeded and reproducible; the generated substitute values
are not.`,
		Example: `  anonymizer -i input.csv -o output.csv -s 0.5 -c name -c email
  anonymizer -i input.csv -o output.csv -s 0.2 -c column_0 --no_header
  anonymizer -i input.csv -o output.csv -s 0.75 -c Name -e latin1 -d ";"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if it exists (Overload overwrites existing env vars)
			if err := godotenv.Overload(); err == nil {
				slog.Info("loaded .env file (overwriting existing env vars)")
			}

			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load configuration", "error", err)
				return err
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			logger := logging.WithRunID(slog.Default())

			delim, err := parseDelimiter(delimiter)
			if err != nil {
				logger.Error("run failed", "error", err, "code", core.MapError(err).Code)
				return err
			}

			p, err := core.NewPipeline(core.Options{
				InputFile:  inputFile,
				OutputFile: outputFile,
				SampleSize: sampleSize,
				Columns:    columns,
				Header:     !noHeader,
				Encoding:   encoding,
				Delimiter:  delim,
				Seed:       cfg.Sample.Seed,
			}, logger)
			if err != nil {
				logger.Error("run failed", "error", err, "code", core.MapError(err).Code,
					"hint", core.FormatUserError(err))
				return err
			}

			if err := p.Run(cmd.Context()); err != nil {
				logger.Error("run failed", "error", err, "code", core.MapError(err).Code,
					"hint", core.FormatUserError(err))
				return err
			}

			logger.Info("data sampled and anonymized successfully", "output", outputFile)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inputFile, "input_file", "i", "", "path to the input CSV file")
	flags.StringVarP(&outputFile, "output_file", "o", "", "path to the output CSV file")
	flags.Float64VarP(&sampleSize, "sample_size", "s", 0, "fraction of rows to sample (0.0 to 1.0)")
	flags.StringSliceVarP(&columns, "columns", "c", nil, "column names to anonymize")
	flags.BoolVar(&noHeader, "no_header", false, "input CSV has no header row")
	flags.StringVarP(&encoding, "encoding", "e", "", "input encoding (e.g. utf-8, latin1); detected when omitted")
	flags.StringVarP(&delimiter, "delimiter", "d", ",", "input field delimiter")

	cmd.MarkFlagRequired("input_file")
	cmd.MarkFlagRequired("output_file")
	cmd.MarkFlagRequired("sample_size")
	cmd.MarkFlagRequired("columns")

	return cmd
}

// parseDelimiter converts the flag value to a single rune. "\t" is accepted
// as a spelled-out tab since shells make a literal tab awkward to pass.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, core.NewParameterError("delimiter", s, "must be a single character")
	}
	return r, nil
}
