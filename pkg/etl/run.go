package etl

import (
	"fmt"
	"log/slog"

	"etl/pkg/data"
	"etl/pkg/pipeline"
)

const previewRows = 5

// Config holds the hardcoded run parameters.
type Config struct {
	Output      string
	Numeric     []string
	Categorical []string
}

// DefaultConfig returns the hardcoded output path and iris column lists.
func DefaultConfig() Config {
	return Config{
		Output:      "transformed_data.csv",
		Numeric:     data.IrisFeatures,
		Categorical: data.IrisTarget,
	}
}

// Result summarises a completed run.
type Result struct {
	Path    string
	Rows    int
	Columns []string
}

// Run extracts the iris sample, preprocesses it and writes the result to cfg.Output.
// Preprocessing errors surface before the output file is touched.
func Run(cfg Config, log *slog.Logger) (Result, error) {
	// ---- Extract ----
	df, err := data.LoadIris()
	if err != nil {
		return Result{}, fmt.Errorf("extract: %w", err)
	}
	log.Info("extracted", "stage", "extract", "rows", df.Nrow(), "cols", df.Ncol())
	fmt.Println("Extracted Data Sample:")
	fmt.Println(data.Preview(df, previewRows))

	// ---- Transform ----
	schema, err := pipeline.NewSchema(cfg.Numeric, cfg.Categorical)
	if err != nil {
		return Result{}, fmt.Errorf("transform: %w", err)
	}
	out, err := pipeline.NewPreprocessor(schema).FitTransform(df)
	if err != nil {
		return Result{}, fmt.Errorf("transform: %w", err)
	}
	log.Info("transformed", "stage", "transform", "rows", out.Nrow(), "cols", out.Ncol())
	fmt.Println("Transformed Data Sample:")
	fmt.Println(data.Preview(out, previewRows))

	// ---- Load ----
	if err := data.WriteCSV(cfg.Output, out); err != nil {
		return Result{}, fmt.Errorf("load: %w", err)
	}
	fmt.Printf("Data loaded to '%s' successfully.\n", cfg.Output)
	log.Info("loaded", "stage", "load", "path", cfg.Output)

	return Result{Path: cfg.Output, Rows: out.Nrow(), Columns: out.Names()}, nil
}
