package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/config"
	"raycaster/internal/preview"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene YAML file (default: built-in 16x16 map)")
	atlasFile := flag.String("atlas", "", "Texture atlas image (default: walltext.png)")
	strategy := flag.String("strategy", "", "Ray strategy: march or grid (default: march)")
	tps := flag.Int("tps", 30, "Frames shown per second")
	once := flag.Bool("once", false, "Stop on the last frame instead of looping")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Resolve(config.Flags{Scene: *sceneFile, Atlas: *atlasFile, Strategy: *strategy})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sc := scene.Default()
	if cfg.Scene != "" {
		var err error
		if sc, err = scene.Load(cfg.Scene); err != nil {
			log.Fatal(err)
		}
	}

	atlas, err := texture.LoadAtlas(cfg.Atlas)
	if err != nil {
		log.Fatal(err)
	}

	rcfg := render.DefaultConfig()
	rcfg.Width = cfg.Width
	rcfg.Height = cfg.Height
	rcfg.Workers = max(cfg.Workers, 1)
	r, err := render.New(atlas, raycast.NewCaster(sc.Map(), cfg.CasterConfig()), rcfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Tile raycaster")
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(preview.NewPlayer(sc, r, !*once)); err != nil {
		log.Fatal(err)
	}
}
