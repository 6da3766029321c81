package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/airdata-cli/internal/artifact"
	"github.com/sells-group/airdata-cli/internal/dataset"
	"github.com/sells-group/airdata-cli/internal/fetcher"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate JSON artifacts from the OurAirports CSVs",
	Long: `Download the OurAirports CSV files and write every artifact into the output directory.

By default every dataset is generated. Use --datasets to restrict the run.
Use --row-policy skip to drop rows that lack a column instead of aborting.
Use --compression zstd to write .json.zst artifacts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("command", "generate"))

		if err := applyGenerateFlags(cmd); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return eris.Wrap(err, "generate")
		}

		policy, err := dataset.ParseRowPolicy(cfg.Generate.RowPolicy)
		if err != nil {
			return eris.Wrap(err, "generate")
		}
		compression, err := artifact.ParseCompression(cfg.Output.Compression)
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.Source.UserAgent,
			Timeout:   time.Duration(cfg.Source.TimeoutSecs) * time.Second,
			RateLimit: rate.Limit(cfg.Source.RateLimit),
		})
		w, err := artifact.NewWriter(cfg.Output.Dir, artifact.Options{
			Compression: compression,
			Indent:      cfg.Output.Indent,
		})
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		loader := dataset.NewLoader(f, cfg.Source.BaseURL, policy).WithCSVOptions(fetcher.CSVOptions{
			LazyQuotes: cfg.Source.LazyQuotes,
			TrimSpace:  cfg.Source.TrimSpace,
		})
		engine := dataset.NewEngine(loader, w, dataset.NewRegistry())

		log.Info("starting generation",
			zap.String("base_url", cfg.Source.BaseURL),
			zap.Strings("datasets", cfg.Generate.Datasets),
		)

		sum, err := engine.Run(ctx, dataset.RunOpts{Datasets: cfg.Generate.Datasets})
		if err != nil {
			return eris.Wrap(err, "generate")
		}

		formatSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("datasets", "", "comma-separated dataset names (e.g., airports,navaids)")
	generateCmd.Flags().String("output", "", "output directory (overrides output.dir)")
	generateCmd.Flags().String("compression", "", "artifact compression: none, zstd")
	generateCmd.Flags().String("row-policy", "", "bad row handling: abort, skip")
	rootCmd.AddCommand(generateCmd)
}

// applyGenerateFlags copies explicitly set flags over the loaded config.
func applyGenerateFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed("datasets") {
		s, err := flags.GetString("datasets")
		if err != nil {
			return eris.Wrap(err, "generate: read --datasets")
		}
		cfg.Generate.Datasets = splitList(s)
	}
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"output", &cfg.Output.Dir},
		{"compression", &cfg.Output.Compression},
		{"row-policy", &cfg.Generate.RowPolicy},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		s, err := flags.GetString(o.flag)
		if err != nil {
			return eris.Wrapf(err, "generate: read --%s", o.flag)
		}
		*o.dst = s
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatSummary writes a short report of a completed run to out.
func formatSummary(out io.Writer, sum *dataset.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Run\t%s\n", sum.RunID)
	_, _ = fmt.Fprintf(w, "Datasets\t%s\n", strings.Join(sum.Datasets, ", "))
	_, _ = fmt.Fprintf(w, "Rows\t%d\n", sum.Rows)
	_, _ = fmt.Fprintf(w, "Skipped\t%d\n", sum.Skipped)
	_, _ = fmt.Fprintf(w, "Elapsed\t%s\n", sum.Elapsed.Round(time.Millisecond))
	_ = w.Flush()

	for _, a := range sum.Artifacts {
		_, _ = fmt.Fprintln(out, a)
	}
}
