package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/batch"
	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/observability"
	"github.com/katalvlaran/mstbench/report"
)

func (c *cli) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute both MSTs for every graph of a batch and write the results",
		Long: `Reads a JSON or YAML batch of graphs, runs Prim and Kruskal on each one,
writes a JSON result document and prints a comparison report.

Graphs that fail validation are reported and skipped; the command then exits
with an error after writing the results of the remaining graphs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			logger := observability.GetLogger()

			inputs, err := graphio.ReadBatch(cfg.Input.Path)
			if err != nil {
				return err
			}

			p := batch.NewProcessor(
				batch.WithLogger(logger),
				batch.WithWorkers(cfg.Processor.Workers),
				batch.WithPrimPolicy(batch.PrimPolicy(cfg.Processor.PrimPolicy)),
			)
			results, procErr := p.Process(cmd.Context(), inputs)
			if results == nil && procErr != nil {
				return procErr
			}

			if err := graphio.WriteResults(cfg.Output.Path, p.RunID(), results); err != nil {
				return err
			}
			logger.Info("Results written.",
				zap.String("run_id", p.RunID()),
				zap.String("path", cfg.Output.Path),
				zap.Int("graphs", len(results)))

			if cfg.Output.Report {
				if err := report.New(cmd.OutOrStdout()).All(results); err != nil {
					return err
				}
			}

			return procErr
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "input.json", "batch document (.json, .yaml or .yml)")
	flags.StringP("output", "o", "output.json", "result document")
	flags.IntP("workers", "w", 1, "graphs processed concurrently")
	flags.String("prim-policy", config.PrimPolicyForest, "Prim on disconnected graphs: forest or single-tree")
	flags.Bool("report", true, "print the comparison report to stdout")
	c.bind(flags, "input", "input.path")
	c.bind(flags, "output", "output.path")
	c.bind(flags, "workers", "processor.workers")
	c.bind(flags, "prim-policy", "processor.prim_policy")
	c.bind(flags, "report", "output.report")

	return cmd
}
