// Command mstbench compares Prim's and Kruskal's minimum spanning tree
// algorithms over a batch of weighted undirected graphs.
//
//	mstbench generate -o input.json
//	mstbench run -i input.json -o output.json
//	mstbench report output.json
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:], os.Stdout)
	stop()
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs the command line args with report output on out.
func execute(ctx context.Context, args []string, out io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)

	if err := root.ExecuteContext(ctx); err != nil {
		// Interrupts are expected during shutdown.
		if ctx.Err() == nil {
			observability.GetLogger().Error("Command execution failed.", zap.Error(err))
		}
		return err
	}

	return nil
}
