package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/batch"
	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/internal/config"
	"github.com/katalvlaran/mstbench/internal/observability"
)

func (c *cli) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a batch of synthetic graphs built from the configured shapes",
		Long: `Builds one graph per entry of generate.shapes (path, cycle, star, wheel,
complete, grid, sparse, connected) with seeded random weights and writes them
as a batch document that "mstbench run" accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := config.Get().Generate
			graphs, err := generateBatch(gen)
			if err != nil {
				return err
			}
			if err := graphio.WriteBatch(gen.Output, graphs); err != nil {
				return err
			}
			observability.GetLogger().Info("Batch generated.",
				zap.String("path", gen.Output),
				zap.Int("graphs", len(graphs)),
				zap.Int64("seed", gen.Seed))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "input.json", "batch document to write (.json, .yaml or .yml)")
	flags.Int64("seed", 1, "random seed; graph i uses seed+i")
	flags.String("weights", config.DistInteger, "weight distribution (constant, uniform, integer, normal, exponential)")
	c.bind(flags, "output", "generate.output")
	c.bind(flags, "seed", "generate.seed")
	c.bind(flags, "weights", "generate.weights.distribution")

	return cmd
}

// generateBatch builds one GraphInput per shape, numbered from 1.
func generateBatch(gen config.GenerateConfig) ([]batch.GraphInput, error) {
	if len(gen.Shapes) == 0 {
		return nil, fmt.Errorf("generate: no shapes configured: %w", graphio.ErrNoGraphs)
	}

	graphs := make([]batch.GraphInput, 0, len(gen.Shapes))
	for i, shape := range gen.Shapes {
		con, err := shape.Constructor()
		if err != nil {
			return nil, err
		}
		opts := append(gen.BuilderOptions(), builder.WithSeed(gen.Seed+int64(i)))
		g, err := builder.BuildGraph(nil, opts, con)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", shape, err)
		}
		graphs = append(graphs, batch.FromGraph(batch.IntID(i+1), g))
	}

	return graphs, nil
}
