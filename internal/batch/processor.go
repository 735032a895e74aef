package batch

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"raycaster/internal/mathutil"
	"raycaster/internal/postprocess"
	"raycaster/internal/raster"
	"raycaster/internal/render"
	"raycaster/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string // jpg, png or webp
	Quality     int    // jpg only
	Width       int    // output size; the renderer draws at Width*Supersample
	Height      int
	Supersample int
	Workers     int
	Scene       *scene.Scene
	Renderer    *render.Renderer
	Quiet       bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64 // camera angle in [0, 2π)
	Path    string
	Hits    int
	Success bool
	Error   string
}

// FrameName returns the zero-padded file name of a frame.
func FrameName(frame int, format string) string {
	return fmt.Sprintf("%05d.%s", frame, format)
}

// Run renders and encodes all frames using a worker pool. Each worker owns
// one FrameBuffer and reuses it for every frame it draws.
func Run(cfg Config, frames []int) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(cfg.Workers, 1)

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb := cfg.Renderer.NewFrameBuffer()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, fb, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, fb *raster.FrameBuffer, frame int) Result {
	cam := cfg.Scene.CameraAt(frame)
	res := Result{Frame: frame, Angle: mathutil.NormalizeAngle(cam.Angle)}

	stats := cfg.Renderer.Render(fb, cam)
	res.Hits = stats.Hits

	img := fb.Image()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	res.Path = filepath.Join(cfg.OutputDir, FrameName(frame, cfg.Format))
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := writeImage(res.Path, img, cfg.Format, cfg.Quality); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func writeImage(path string, img image.Image, format string, quality int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, format, quality)
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("JPEG encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %w", err)
		}
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
