package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/cavegen/internal/logger"
)

// RunBatch generates one cave per seed concurrently with at most workers
// runs in flight (0 = GOMAXPROCS). Results are returned in seed order.
// The first failure cancels the remaining runs.
func RunBatch(ctx context.Context, base Options, seeds []string, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		opts := base
		opts.Seed = seed
		opts.UseRandomSeed = false
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("seed %q: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.L().Debug("batch complete", zap.Int("maps", len(seeds)), zap.Int("workers", workers))
	return results, nil
}

// SeedSequence returns n seeds of the form "<prefix>-<i>".
func SeedSequence(prefix string, n int) []string {
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return seeds
}
