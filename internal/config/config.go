package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"raycaster/internal/raycast"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	Scene     string `json:"scene"` // empty: built-in reference scene
	Atlas     string `json:"atlas"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Frames      int     `json:"frames"` // 0: the scene's full rotation
	Format      string  `json:"format"`
	Quality     int     `json:"quality"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Columns     int     `json:"column_workers"`
	MaxDistance float64 `json:"max_distance"`
	Step        float64 `json:"step"`
	Strategy    string  `json:"strategy"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Atlas != "" {
		c.Atlas = flags.Atlas
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Strategy != "" {
		c.Strategy = flags.Strategy
	}

	// Resolve relative paths against base dir
	if c.Atlas == "" {
		c.Atlas = "walltext.png"
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.BaseDir != "" {
		c.Atlas = resolvePath(c.BaseDir, c.Atlas)
		c.OutputDir = resolvePath(c.BaseDir, c.OutputDir)
		if c.Scene != "" {
			c.Scene = resolvePath(c.BaseDir, c.Scene)
		}
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.Format == "" {
		c.Format = "jpg"
	}
	if c.Quality <= 0 {
		c.Quality = 100
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Columns <= 0 {
		c.Columns = 1
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = raycast.DefaultMaxDistance
	}
	if c.Step <= 0 {
		c.Step = raycast.DefaultStep
	}
	if c.Strategy == "" {
		c.Strategy = string(raycast.StrategyMarch)
	}
}

// Validate checks resolved settings.
func (c *Config) Validate() error {
	switch c.Format {
	case "jpg", "png", "webp":
	default:
		return fmt.Errorf("config: unknown format %q (want jpg, png or webp)", c.Format)
	}
	if c.Quality > 100 {
		return fmt.Errorf("config: quality %d above 100", c.Quality)
	}
	if c.Width < 2 || c.Height < 1 {
		return fmt.Errorf("config: invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.Step >= 1 {
		return fmt.Errorf("config: step %g must be below one cell", c.Step)
	}
	if c.Step >= c.MaxDistance {
		return fmt.Errorf("config: step %g not below max distance %g", c.Step, c.MaxDistance)
	}
	if _, err := raycast.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// CasterConfig returns the ray caster settings.
func (c *Config) CasterConfig() raycast.Config {
	strategy, _ := raycast.ParseStrategy(c.Strategy)
	return raycast.Config{
		MaxDistance: c.MaxDistance,
		Step:        c.Step,
		Strategy:    strategy,
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene       string
	Atlas       string
	OutputDir   string
	Format      string
	Quality     int
	Workers     int
	Frames      int
	Supersample int
	Strategy    string
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
