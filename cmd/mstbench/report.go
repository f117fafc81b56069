package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/observability"
	"github.com/katalvlaran/mstbench/report"
)

func (c *cli) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [results.json]",
		Short: "Print the comparison report for a previously written result document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Get().Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := graphio.ReadResults(path)
			if err != nil {
				return err
			}
			observability.GetLogger().Debug("Results loaded.",
				zap.String("run_id", doc.RunID),
				zap.Int("graphs", len(doc.Results)))

			return report.New(cmd.OutOrStdout()).All(doc.Results)
		},
	}
}
