// Package dataset generates the JSON artifacts for each OurAirports dataset.
package dataset

import (
	"context"

	"github.com/sells-group/airdata-cli/internal/artifact"
)

// Result holds the outcome of generating one dataset.
type Result struct {
	Rows      int64    `json:"rows"`
	Skipped   int64    `json:"skipped"`
	Artifacts []string `json:"artifacts"`
}

// Dataset defines the interface each generated dataset must implement.
type Dataset interface {
	// Name returns the unique identifier for this dataset (e.g., "airports").
	Name() string

	// Sources returns the CSV file names this dataset reads, relative to the
	// source base URL.
	Sources() []string

	// Artifacts returns the file names this dataset writes.
	Artifacts() []string

	// Generate loads the sources, builds the derived collections and writes
	// every artifact. Any error is fatal to the run.
	Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error)
}

// output pairs an artifact name with the value encoded into it.
type output struct {
	name  string
	value any
}

// writeOutputs writes each output in order and records the written paths on
// res. It stops at the first failure.
func writeOutputs(w *artifact.Writer, res *Result, outputs ...output) error {
	for _, o := range outputs {
		path, err := w.WriteJSON(o.name, o.value)
		if err != nil {
			return err
		}
		res.Artifacts = append(res.Artifacts, path)
	}
	return nil
}
