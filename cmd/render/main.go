package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"raycaster/internal/batch"
	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene YAML file (default: built-in 16x16 map)")
	atlasFile := flag.String("atlas", "", "Texture atlas image (default: walltext.png)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: jpg, png or webp (default: jpg)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 100)")
	workers := flag.Int("workers", 0, "Number of frame worker goroutines (default: NumCPU)")
	frames := flag.Int("frames", 0, "Render only the first N frames")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downscale (default: 1)")
	strategy := flag.String("strategy", "", "Ray strategy: march or grid (default: march)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:       *sceneFile,
		Atlas:       *atlasFile,
		OutputDir:   *outputDir,
		Format:      *format,
		Quality:     *quality,
		Workers:     *workers,
		Frames:      *frames,
		Supersample: *supersample,
		Strategy:    *strategy,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load scene
	sc := scene.Default()
	if cfg.Scene != "" {
		var err error
		sc, err = scene.Load(cfg.Scene)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	// Load textures
	atlas, err := texture.LoadAtlas(cfg.Atlas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading textures: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Textures: %d of %dx%d\n", atlas.Count(), atlas.Size(), atlas.Size())

	rcfg := render.DefaultConfig()
	rcfg.Width = cfg.Width * cfg.Supersample
	rcfg.Height = cfg.Height * cfg.Supersample
	rcfg.Workers = cfg.Columns
	renderer, err := render.New(atlas, raycast.NewCaster(sc.Map(), cfg.CasterConfig()), rcfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frameList := sc.Frames()
	if cfg.Frames > 0 && cfg.Frames < len(frameList) {
		frameList = frameList[:cfg.Frames]
	}

	// Print summary
	m := sc.Map()
	fmt.Printf("Tile raycaster → %s\n", cfg.Format)
	fmt.Printf("Map: %dx%d, Frames: %d, Size: %dx%d, Workers: %d\n",
		m.Width(), m.Height(), len(frameList), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Quality:     cfg.Quality,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Scene:       sc,
		Renderer:    renderer,
	}

	results := batch.Run(batchCfg, frameList)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frameList))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", batch.FrameName(e.Frame, cfg.Format), e.Error)
		}
	}

	// Write manifest
	if success > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
