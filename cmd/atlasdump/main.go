package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"raycaster/internal/texture"
)

func dumpTexture(a *texture.Atlas, id int, dir string) (err error) {
	name := filepath.Join(dir, fmt.Sprintf("tex%02d.png", id))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, a.Texture(id)); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	r, g, b, _ := a.Representative(id).Unpack()
	fmt.Printf("OK  #%d -> %s  (minimap color #%02x%02x%02x)\n", id, name, r, g, b)
	return nil
}

func main() {
	outDir := flag.String("output", "textures", "Directory for the extracted textures")
	flag.Parse()

	path := "walltext.png"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	a, err := texture.LoadAtlas(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d textures of %dx%d\n", path, a.Count(), a.Size(), a.Size())

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}

	errors := 0
	for id := 0; id < a.Count(); id++ {
		if err := dumpTexture(a, id, *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Println("\nDone. All textures extracted.")
}
