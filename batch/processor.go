package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/opcount"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/stopwatch"
)

// PrimPolicy selects how Prim treats a disconnected graph.
type PrimPolicy string

const (
	// PrimForest restarts Prim in every component (same cost as Kruskal).
	PrimForest PrimPolicy = "forest"
	// PrimSingleTree spans only the start vertex's component.
	PrimSingleTree PrimPolicy = "single-tree"
)

// Processor runs Prim and Kruskal over every graph of a batch.
type Processor struct {
	logger  *zap.Logger
	clock   stopwatch.Clock
	workers int
	policy  PrimPolicy
	runID   string
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock sets the clock used to time each algorithm; nil means stopwatch.System.
func WithClock(c stopwatch.Clock) Option {
	return func(p *Processor) { p.clock = c }
}

// WithWorkers sets how many graphs may be processed concurrently. Values
// below 1 mean 1. The two algorithms of one graph always run sequentially.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n < 1 {
			n = 1
		}
		p.workers = n
	}
}

// WithPrimPolicy sets Prim's disconnected-graph policy.
func WithPrimPolicy(policy PrimPolicy) Option {
	return func(p *Processor) { p.policy = policy }
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(p *Processor) {
		if id != "" {
			p.runID = id
		}
	}
}

// NewProcessor returns a sequential Processor with a fresh random run ID.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		logger:  zap.NewNop(),
		clock:   stopwatch.System,
		workers: 1,
		policy:  PrimForest,
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// RunID identifies this processor's run in logs and output.
func (p *Processor) RunID() string { return p.runID }

// Process compares both algorithms on every input and returns one Result per
// input, in input order.
//
// A graph that fails validation yields a Result with Error set; processing
// continues and the returned error joins one ErrGraphFailed-wrapped error per
// failed graph. If ctx is cancelled no further graphs are started and Process
// returns nil results with ctx's error.
func (p *Processor) Process(ctx context.Context, inputs []GraphInput) ([]Result, error) {
	log := p.logger.With(zap.String("run_id", p.runID))
	log.Info("Processing batch.", zap.Int("graphs", len(inputs)), zap.Int("workers", p.workers))

	start := time.Now()
	results := make([]Result, len(inputs))
	errs := make([]error, len(inputs))

	if p.workers <= 1 {
		for i := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i], errs[i] = p.processOne(ctx, log, inputs[i])
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for i := range inputs {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i], errs[i] = p.processOne(gctx, log, inputs[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			errs[i] = fmt.Errorf("%w: graph %s: %w", ErrGraphFailed, inputs[i].ID, err)
		}
	}
	log.Info("Batch processed.",
		zap.Int("graphs", len(inputs)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results, errors.Join(errs...)
}

// ProcessOne compares both algorithms on a single graph. ctx bounds the
// component scan of the input statistics.
func (p *Processor) ProcessOne(ctx context.Context, in GraphInput) (Result, error) {
	return p.processOne(ctx, p.logger.With(zap.String("run_id", p.runID)), in)
}

func (p *Processor) processOne(ctx context.Context, log *zap.Logger, in GraphInput) (Result, error) {
	log = log.With(zap.Stringer("graph_id", in.ID))
	res := Result{
		GraphID: in.ID,
		InputStats: InputStats{
			Vertices: len(in.Nodes),
			Edges:    len(in.Edges),
			Density:  Density(len(in.Nodes), len(in.Edges)),
		},
	}

	g, err := in.Graph()
	if err != nil {
		res.Error = err.Error()
		log.Warn("Skipping invalid graph.", zap.Error(err))
		return res, err
	}
	if res.InputStats.Components, err = bfs.CountComponents(g, bfs.WithContext(ctx)); err != nil {
		res.Error = err.Error()
		return res, err
	}

	primOpts := []prim_kruskal.Option{}
	if p.policy == PrimSingleTree {
		primOpts = append(primOpts, prim_kruskal.WithSingleTree())
	}

	// Prim first, then Kruskal; never concurrently for one graph.
	if res.Prim, err = p.measure(log, "prim", func(c opcount.Counter) (prim_kruskal.Result, error) {
		return prim_kruskal.Prim(g, append(primOpts, prim_kruskal.WithCounter(c))...)
	}); err != nil {
		res.Error = err.Error()
		return res, err
	}
	if res.Kruskal, err = p.measure(log, "kruskal", func(c opcount.Counter) (prim_kruskal.Result, error) {
		return prim_kruskal.Kruskal(g, prim_kruskal.WithCounter(c))
	}); err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.CostsMatch = CostsEqual(res.Prim.TotalCost, res.Kruskal.TotalCost)

	if !res.CostsMatch && p.policy == PrimForest {
		log.Warn("MST costs differ.",
			zap.Float64("prim", res.Prim.TotalCost),
			zap.Float64("kruskal", res.Kruskal.TotalCost))
	}
	log.Debug("Graph processed.",
		zap.Int("vertices", res.InputStats.Vertices),
		zap.Int("edges", res.InputStats.Edges),
		zap.Int("components", res.InputStats.Components),
		zap.Int64("prim_ops", res.Prim.OperationsCount),
		zap.Int64("kruskal_ops", res.Kruskal.OperationsCount),
	)

	return res, nil
}

// measure runs one algorithm with a fresh tally under the stopwatch. A failed
// run is logged with the time and operations it spent and yields no record.
func (p *Processor) measure(log *zap.Logger, name string, run func(opcount.Counter) (prim_kruskal.Result, error)) (*AlgorithmResult, error) {
	tally := opcount.NewTally()
	var mst prim_kruskal.Result
	elapsed, err := stopwatch.Measure(p.clock, func() error {
		var err error
		mst, err = run(tally)
		return err
	})
	if err != nil {
		log.Error("Algorithm failed.",
			zap.String("algorithm", name),
			zap.Float64("execution_time_ms", stopwatch.Millis(elapsed)),
			zap.Int64("operations", tally.Total()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &AlgorithmResult{
		MSTEdges:        edgeRecords(mst.Edges),
		TotalCost:       mst.TotalWeight,
		OperationsCount: tally.Total(),
		ExecutionTimeMs: stopwatch.Millis(elapsed),
		Operations:      tally.Snapshot(),
	}, nil
}
