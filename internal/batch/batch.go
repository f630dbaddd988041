// Package batch runs one command stream against several chain lengths at once.
// Each length gets its own Simulator; nothing is shared between runs.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"knot-chain/pkg/rope"
)

// Options tune a batch.
type Options struct {
	// Workers bounds concurrent runs; values below one mean one.
	Workers         int
	VisitedCapacity int
	Checked         bool
	Logger          *zap.Logger
}

// Result is the outcome of one chain length.
type Result struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Knots      int           `json:"knots" yaml:"knots"`
	Visited    int           `json:"visited" yaml:"visited"`
	Steps      int           `json:"steps" yaml:"steps"`
	EarlyExits int           `json:"early_exits" yaml:"early_exits"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Run simulates cmds once per entry of lengths. Results keep the order of
// lengths. The first failing run cancels those not yet started.
func Run(ctx context.Context, cmds []rope.Command, lengths []int, opts Options) ([]Result, error) {
	if len(lengths) == 0 {
		return nil, errors.New("batch: no chain lengths given")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(opts.Workers, 1)

	results := make([]Result, len(lengths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range lengths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runOne(cmds, n, opts, logger)
			if err != nil {
				return fmt.Errorf("knots=%d: %w", n, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(cmds []rope.Command, knots int, opts Options, logger *zap.Logger) (Result, error) {
	id := uuid.NewString()
	log := logger.With(zap.String("run_id", id), zap.Int("knots", knots))

	simOpts := []rope.Option{rope.WithLogger(log)}
	if opts.VisitedCapacity > 0 {
		simOpts = append(simOpts, rope.WithVisitedCapacity(opts.VisitedCapacity))
	}
	if opts.Checked {
		simOpts = append(simOpts, rope.WithCheckedInvariant())
	}
	sim, err := rope.New(knots, simOpts...)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	visited, err := sim.Run(cmds)
	if err != nil {
		return Result{}, err
	}
	return Result{
		RunID:      id,
		Knots:      knots,
		Visited:    visited,
		Steps:      sim.Steps(),
		EarlyExits: sim.EarlyExits(),
		Elapsed:    time.Since(start),
	}, nil
}
