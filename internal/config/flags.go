package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Cave width in cells")
	flagHeight     = flag.Int("height", 0, "Cave height in cells")
	flagFill       = flag.Int("fill", -1, "Random fill percent (0-100)")
	flagSeed       = flag.String("seed", "", "Seed string or integer")
	flagRandomSeed = flag.Bool("random-seed", false, "Derive the seed from the current time")
	flagPasses     = flag.Int("passes", -1, "Smoothing passes")
	flagThreshold  = flag.Int("threshold", -1, "Smoothing wall threshold (0-8)")
	flagCellSize   = flag.Float64("cell-size", 0, "World-space cell size")
	flagWorkers    = flag.Int("workers", -1, "Batch worker count (0 = GOMAXPROCS)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Cave.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Cave.Height = *flagHeight
	}
	if *flagFill >= 0 {
		cfg.Cave.FillPercent = *flagFill
	}
	if *flagSeed != "" {
		cfg.Cave.Seed = *flagSeed
		cfg.Cave.UseRandomSeed = false
	}
	if *flagRandomSeed {
		cfg.Cave.UseRandomSeed = true
	}
	if *flagPasses >= 0 {
		cfg.Cave.SmoothPasses = *flagPasses
	}
	if *flagThreshold >= 0 {
		cfg.Cave.WallThreshold = *flagThreshold
	}
	if *flagCellSize > 0 {
		cfg.Mesh.CellSize = float32(*flagCellSize)
	}
	if *flagWorkers >= 0 {
		cfg.Batch.Workers = *flagWorkers
	}
}
