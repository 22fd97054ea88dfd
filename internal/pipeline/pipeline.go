// Package pipeline runs the full cave generation sequence: random fill,
// smoothing and marching squares meshing.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cavegen/internal/config"
	"github.com/Faultbox/cavegen/internal/logger"
	"github.com/Faultbox/cavegen/pkg/cavegrid"
	"github.com/Faultbox/cavegen/pkg/marching"
)

// Options are the inputs for one generation run.
type Options struct {
	Width         int
	Height        int
	FillPercent   int
	Seed          string
	UseRandomSeed bool
	SmoothPasses  int
	WallThreshold int
	CellSize      float32
}

// FromConfig extracts generation options from a loaded config.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Width:         cfg.Cave.Width,
		Height:        cfg.Cave.Height,
		FillPercent:   cfg.Cave.FillPercent,
		Seed:          cfg.Cave.Seed,
		UseRandomSeed: cfg.Cave.UseRandomSeed,
		SmoothPasses:  cfg.Cave.SmoothPasses,
		WallThreshold: cfg.Cave.WallThreshold,
		CellSize:      cfg.Mesh.CellSize,
	}
}

// Validate checks every argument up front so a run never starts on
// inputs that a later stage would reject.
func (o Options) Validate() error {
	switch {
	case o.Width < 1 || o.Height < 1:
		return fmt.Errorf("%w: grid size %dx%d must be positive", cavegrid.ErrInvalidArgument, o.Width, o.Height)
	case o.FillPercent < 0 || o.FillPercent > 100:
		return fmt.Errorf("%w: fill percent %d outside [0,100]", cavegrid.ErrInvalidArgument, o.FillPercent)
	case o.WallThreshold < 0 || o.WallThreshold > cavegrid.MaxWallThreshold:
		return fmt.Errorf("%w: wall threshold %d outside [0,%d]", cavegrid.ErrInvalidArgument, o.WallThreshold, cavegrid.MaxWallThreshold)
	case o.SmoothPasses < 0:
		return fmt.Errorf("%w: negative smoothing passes %d", cavegrid.ErrInvalidArgument, o.SmoothPasses)
	case !(o.CellSize > 0):
		return fmt.Errorf("%w: got %v", marching.ErrInvalidCellSize, o.CellSize)
	}
	return nil
}

// Timings records how long each stage took.
type Timings struct {
	Fill   time.Duration
	Smooth time.Duration
	Mesh   time.Duration
}

// Total returns the sum of all stages.
func (t Timings) Total() time.Duration {
	return t.Fill + t.Smooth + t.Mesh
}

// Result is the output of one run. Each run owns its grid and mesh.
type Result struct {
	Seed     string // seed string actually used
	SeedHash int64
	Grid     *cavegrid.Grid
	Mesh     *marching.Mesh
	Timings  Timings
}

// Run generates one cave. The seed is resolved first, then every stage runs
// to completion; ctx is only checked between stages.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if opts.UseRandomSeed {
		seed = cavegrid.RandomSeed()
	}
	res := &Result{Seed: seed, SeedHash: cavegrid.ParseSeed(seed)}
	log := logger.L().With(zap.String("seed", seed))

	start := time.Now()
	grid, err := cavegrid.Generate(opts.Width, opts.Height, opts.FillPercent, res.SeedHash)
	if err != nil {
		return nil, fmt.Errorf("generating grid: %w", err)
	}
	res.Timings.Fill = time.Since(start)
	log.Debug("grid filled",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("fill_percent", opts.FillPercent),
		zap.Int("walls", grid.WallCount()),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	grid, err = cavegrid.Smooth(grid, opts.WallThreshold, opts.SmoothPasses)
	if err != nil {
		return nil, fmt.Errorf("smoothing grid: %w", err)
	}
	res.Timings.Smooth = time.Since(start)
	res.Grid = grid
	log.Debug("grid smoothed",
		zap.Int("passes", opts.SmoothPasses),
		zap.Int("threshold", opts.WallThreshold),
		zap.Int("walls", grid.WallCount()),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	mesh, err := marching.GenerateMesh(grid, opts.CellSize)
	if err != nil {
		return nil, fmt.Errorf("generating mesh: %w", err)
	}
	res.Timings.Mesh = time.Since(start)
	res.Mesh = mesh

	log.Info("cave generated",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", res.Timings.Total()),
	)
	return res, nil
}
