// cavegen is a CLI for generating cave occupancy grids and marching squares meshes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cavegen/internal/config"
	"github.com/Faultbox/cavegen/internal/logger"
	"github.com/Faultbox/cavegen/internal/pipeline"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Logging.JSON); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx := context.Background()

	switch command {
	case "generate", "gen":
		err = cmdGenerate(ctx, cfg)
	case "grid":
		err = cmdGrid(ctx, cfg)
	case "batch":
		err = cmdBatch(ctx, cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`cavegen - procedural cave generator

Usage:
  cavegen [flags] <command> [options]

Commands:
  generate                 Generate one cave and print a summary
  grid                     Print the smoothed occupancy grid (# wall, . open)
  batch [-n N]             Generate N caves concurrently (seeds <seed>-0..N-1)
  config [-save] [-o path] Print the effective configuration as YAML

Flags:
  -config path   -debug        -width N     -height N    -fill P
  -seed S        -random-seed  -passes N    -threshold T -cell-size F
  -workers N

Environment:
  CAVEGEN_CAVE_WIDTH, CAVEGEN_CAVE_SEED, CAVEGEN_MESH_CELL_SIZE, CAVEGEN_LOG_LEVEL, ...

Examples:
  cavegen generate
  cavegen -seed 42 -fill 50 grid
  cavegen -width 200 -height 200 batch -n 16
  cavegen config -save`)
}

func cmdGenerate(ctx context.Context, cfg *config.Config) error {
	res, err := pipeline.Run(ctx, pipeline.FromConfig(cfg))
	if err != nil {
		return err
	}
	printSummary(res)
	fmt.Printf("Bounds:    %v .. %v\n", res.Mesh.Bounds.Min, res.Mesh.Bounds.Max)
	fmt.Printf("Timings:   fill %v, smooth %v, mesh %v\n", res.Timings.Fill, res.Timings.Smooth, res.Timings.Mesh)
	return nil
}

func cmdGrid(ctx context.Context, cfg *config.Config) error {
	res, err := pipeline.Run(ctx, pipeline.FromConfig(cfg))
	if err != nil {
		return err
	}
	fmt.Print(res.Grid.String())
	fmt.Fprintf(os.Stderr, "\n(seed %s, %dx%d)\n", res.Seed, res.Grid.Width(), res.Grid.Height())
	return nil
}

func cmdBatch(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	count := fs.Int("n", 8, "Number of caves to generate")
	fs.Parse(args)

	if *count < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", *count)
	}

	seeds := pipeline.SeedSequence(cfg.Cave.Seed, *count)
	results, err := pipeline.RunBatch(ctx, pipeline.FromConfig(cfg), seeds, cfg.Batch.Workers)
	if err != nil {
		return err
	}

	fmt.Printf("%-24s %8s %10s %10s %12s\n", "SEED", "WALLS", "VERTICES", "TRIANGLES", "ELAPSED")
	for _, res := range results {
		fmt.Printf("%-24s %8d %10d %10d %12v\n",
			res.Seed, res.Grid.WallCount(), res.Mesh.VertexCount(), res.Mesh.TriangleCount(), res.Timings.Total())
	}
	fmt.Fprintf(os.Stderr, "\n(%d caves generated)\n", len(results))
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	save := fs.Bool("save", false, "Write to the user config directory")
	output := fs.String("o", "", "Write to a specific path")
	fs.Parse(args)

	switch {
	case *output != "":
		if err := cfg.SaveTo(*output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved: %s\n", *output)
	case *save:
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved: %s\n", config.ConfigDir())
	default:
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	}
	return nil
}

func printSummary(res *pipeline.Result) {
	g := res.Grid
	m := res.Mesh
	fmt.Printf("Seed:      %s (%d)\n", res.Seed, res.SeedHash)
	fmt.Printf("Grid:      %dx%d, %d walls (%.1f%%)\n",
		g.Width(), g.Height(), g.WallCount(), 100*float64(g.WallCount())/float64(g.Width()*g.Height()))
	fmt.Printf("Mesh:      %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
}
