// Package config handles cave generator configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all generator settings.
type Config struct {
	Cave    CaveConfig    `yaml:"cave" envPrefix:"CAVE_"`
	Mesh    MeshConfig    `yaml:"mesh" envPrefix:"MESH_"`
	Batch   BatchConfig   `yaml:"batch" envPrefix:"BATCH_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// CaveConfig holds occupancy grid generation settings.
type CaveConfig struct {
	Width         int    `yaml:"width" env:"WIDTH"`
	Height        int    `yaml:"height" env:"HEIGHT"`
	FillPercent   int    `yaml:"fill_percent" env:"FILL_PERCENT"`
	Seed          string `yaml:"seed" env:"SEED"`
	UseRandomSeed bool   `yaml:"use_random_seed" env:"RANDOM_SEED"`
	SmoothPasses  int    `yaml:"smooth_passes" env:"SMOOTH_PASSES"`
	WallThreshold int    `yaml:"wall_threshold" env:"WALL_THRESHOLD"`
}

// MeshConfig holds marching squares settings.
type MeshConfig struct {
	CellSize float32 `yaml:"cell_size" env:"CELL_SIZE"`
}

// BatchConfig holds settings for concurrent multi-map generation.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"WORKERS"` // 0 = GOMAXPROCS
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	LogFile string `yaml:"log_file" env:"FILE"`
	JSON    bool   `yaml:"json" env:"JSON"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cave: CaveConfig{
			Width:         60,
			Height:        80,
			FillPercent:   45,
			Seed:          "Waleed",
			UseRandomSeed: false,
			SmoothPasses:  5,
			WallThreshold: 4,
		},
		Mesh: MeshConfig{
			CellSize: 1,
		},
		Batch: BatchConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges before any generation work starts.
func (c *Config) Validate() error {
	switch {
	case c.Cave.Width < 1 || c.Cave.Height < 1:
		return fmt.Errorf("%w: cave size %dx%d must be positive", ErrInvalidConfig, c.Cave.Width, c.Cave.Height)
	case c.Cave.FillPercent < 0 || c.Cave.FillPercent > 100:
		return fmt.Errorf("%w: fill_percent %d outside [0,100]", ErrInvalidConfig, c.Cave.FillPercent)
	case c.Cave.WallThreshold < 0 || c.Cave.WallThreshold > 8:
		return fmt.Errorf("%w: wall_threshold %d outside [0,8]", ErrInvalidConfig, c.Cave.WallThreshold)
	case c.Cave.SmoothPasses < 0:
		return fmt.Errorf("%w: smooth_passes %d is negative", ErrInvalidConfig, c.Cave.SmoothPasses)
	case !(c.Mesh.CellSize > 0):
		return fmt.Errorf("%w: cell_size %v must be positive", ErrInvalidConfig, c.Mesh.CellSize)
	case c.Batch.Workers < 0:
		return fmt.Errorf("%w: batch workers %d is negative", ErrInvalidConfig, c.Batch.Workers)
	}
	return nil
}
