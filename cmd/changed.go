package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/airdata-cli/internal/repo"
)

var changedCmd = &cobra.Command{
	Use:   "changed",
	Short: "Report whether the output repository has uncommitted changes",
	Long:  "Prints true when git reports tracked or untracked changes under repo.dir, false otherwise. Used after generate to decide whether a commit is needed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Repo.Dir
		if len(args) > 0 {
			dir = args[0]
		}

		changed, err := repo.NewDetector(cfg.Repo.GitPath).Changed(cmd.Context(), dir)
		if err != nil {
			return eris.Wrap(err, "changed")
		}

		zap.L().Debug("repository status", zap.String("dir", dir), zap.Bool("changed", changed))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), changed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changedCmd)
}
