// Package core provides the business logic for CSV sampling and anonymization.
//
// This package is the heart of the anonymizer, containing all domain logic
// independent of the CLI layer. It can be used by command-line frontends or
// tests without modification.
//
// # Pipeline
//
// A run is strictly linear: detect encoding, load, sample+anonymize, save.
// The [Pipeline] type sequences these steps and aborts on the first error:
//
//	p, err := core.NewPipeline(core.Options{
//	    InputFile:  "customers.csv",
//	    OutputFile: "customers_anon.csv",
//	    SampleSize: 0.5,
//	    Columns:    []string{"name", "email"},
//	    Header:     true,
//	    Delimiter:  ',',
//	    Seed:       core.DefaultSeed,
//	}, logger)
//	if err != nil {
//	    // parameter or input-file error, caught before any I/O
//	}
//	err = p.Run(ctx)
//
// # Data Model
//
// [Table] holds named columns and ordered rows of [Cell] values. Each cell is
// typed at load time as text, number, or missing; the original field text is
// preserved so pass-through columns round-trip byte-identical.
//
// # Sampling and Anonymization
//
// Row selection uses a fixed seed so the same input, fraction, and columns
// select the same rows on every run. The synthetic value generator is
// deliberately not seeded: generated names and numbers differ between runs.
//
// # Error Handling
//
// Each step wraps its failure in a typed error ([LoadError], [SaveError],
// [AnonymizeError], [ColumnNotFoundError], [ParameterError]), logs it with
// context, and returns it unchanged to the caller. The CLI maps any failure to
// exit code 1; [MapError] assigns a support code for the logged message.
package core
