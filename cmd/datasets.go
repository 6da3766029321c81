package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/airdata-cli/internal/dataset"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the datasets and the artifacts they produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatDatasets(cmd.OutOrStdout(), dataset.NewRegistry().All())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

// formatDatasets writes a tabular listing of datasets to out.
func formatDatasets(out io.Writer, datasets []dataset.Dataset) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSOURCES\tARTIFACTS")
	_, _ = fmt.Fprintln(w, "----\t-------\t---------")
	for _, d := range datasets {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			d.Name(),
			strings.Join(d.Sources(), ","),
			strings.Join(d.Artifacts(), ","),
		)
	}
	_ = w.Flush()
}
