package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"raycaster/internal/raycast"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	if c.Width != 1024 || c.Height != 512 {
		t.Errorf("size: %dx%d", c.Width, c.Height)
	}
	if c.Format != "jpg" || c.Quality != 100 || c.Supersample != 1 {
		t.Errorf("output: format=%s quality=%d supersample=%d", c.Format, c.Quality, c.Supersample)
	}
	if c.Workers != runtime.NumCPU() || c.Columns != 1 {
		t.Errorf("workers: %d columns: %d", c.Workers, c.Columns)
	}
	if c.Atlas != "walltext.png" || c.OutputDir != "frames" || c.Scene != "" {
		t.Errorf("paths: atlas=%s output=%s scene=%s", c.Atlas, c.OutputDir, c.Scene)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	cc := c.CasterConfig()
	if cc.Step != raycast.DefaultStep || cc.MaxDistance != raycast.DefaultMaxDistance || cc.Strategy != raycast.StrategyMarch {
		t.Errorf("caster config: %+v", cc)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"base_dir": "/data", "atlas": "tex/wall.tga", "output_dir": "/abs/out", "format": "png", "quality": 80, "strategy": "grid"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.Resolve(Flags{Format: "webp", Workers: 3, Scene: "scenes/a.yaml"})

	if c.Format != "webp" || c.Quality != 80 || c.Workers != 3 {
		t.Errorf("override: format=%s quality=%d workers=%d", c.Format, c.Quality, c.Workers)
	}
	if c.Atlas != filepath.Join("/data", "tex/wall.tga") {
		t.Errorf("atlas: %s", c.Atlas)
	}
	if c.OutputDir != "/abs/out" {
		t.Errorf("output: %s", c.OutputDir)
	}
	if c.Scene != filepath.Join("/data", "scenes/a.yaml") {
		t.Errorf("scene: %s", c.Scene)
	}
	if c.CasterConfig().Strategy != raycast.StrategyGrid {
		t.Errorf("strategy: %s", c.Strategy)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.Contains(err.Error(), "config: read") {
		t.Errorf("missing: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0o644)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("bad json: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "gif" }},
		{"quality", func(c *Config) { c.Quality = 101 }},
		{"width", func(c *Config) { c.Width = 1 }},
		{"step", func(c *Config) { c.Step = 30 }},
		{"step one cell", func(c *Config) { c.Step = 1 }},
		{"step over one cell", func(c *Config) { c.Step = 1.2 }},
		{"step beyond distance", func(c *Config) { c.Step, c.MaxDistance = 0.5, 0.4 }},
		{"strategy", func(c *Config) { c.Strategy = "bsp" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{})
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
