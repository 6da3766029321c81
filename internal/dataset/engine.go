package dataset

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/airdata-cli/internal/artifact"
)

// Engine orchestrates dataset generation runs.
type Engine struct {
	loader *Loader
	writer *artifact.Writer
	reg    *Registry
}

// RunOpts configures which datasets to generate.
type RunOpts struct {
	Datasets []string // restrict to specific dataset names; empty means all
}

// Summary describes a completed run.
type Summary struct {
	RunID     string        `json:"run_id"`
	Datasets  []string      `json:"datasets"`
	Artifacts []string      `json:"artifacts"`
	Rows      int64         `json:"rows"`
	Skipped   int64         `json:"skipped"`
	Elapsed   time.Duration `json:"elapsed"`
}

// NewEngine creates a new generation engine.
func NewEngine(l *Loader, w *artifact.Writer, reg *Registry) *Engine {
	return &Engine{
		loader: l,
		writer: w,
		reg:    reg,
	}
}

// Run generates the selected datasets in registration order. The first
// failure aborts the run; artifacts already written are left in place.
func (e *Engine) Run(ctx context.Context, opts RunOpts) (*Summary, error) {
	sum := &Summary{RunID: uuid.NewString()}
	log := zap.L().With(zap.String("component", "dataset.engine"), zap.String("run_id", sum.RunID))
	runStart := time.Now()

	datasets, err := e.reg.Select(opts.Datasets)
	if err != nil {
		return nil, err
	}

	log.Info("selected datasets",
		zap.Int("count", len(datasets)),
		zap.String("output_dir", e.writer.Dir()),
		zap.String("row_policy", string(e.loader.Policy())),
	)

	for _, ds := range datasets {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		dsLog := log.With(zap.String("dataset", ds.Name()))
		dsLog.Info("starting generation", zap.Strings("sources", ds.Sources()))

		start := time.Now()
		result, err := ds.Generate(ctx, e.loader, e.writer)
		elapsed := time.Since(start)

		if err != nil {
			dsLog.Error("generation failed", zap.Error(err), zap.Duration("elapsed", elapsed))
			return nil, eris.Wrapf(err, "engine: generate %s", ds.Name())
		}

		dsLog.Info("generation complete",
			zap.Int64("rows", result.Rows),
			zap.Int64("skipped", result.Skipped),
			zap.Int("artifacts", len(result.Artifacts)),
			zap.Duration("elapsed", elapsed),
		)

		sum.Datasets = append(sum.Datasets, ds.Name())
		sum.Artifacts = append(sum.Artifacts, result.Artifacts...)
		sum.Rows += result.Rows
		sum.Skipped += result.Skipped
	}

	sum.Elapsed = time.Since(runStart)
	log.Info("engine run complete",
		zap.Int("datasets", len(sum.Datasets)),
		zap.Int("artifacts", len(sum.Artifacts)),
		zap.Int64("rows", sum.Rows),
		zap.Int64("skipped", sum.Skipped),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}
