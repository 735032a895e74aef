package render

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"raycaster/internal/colors"
	"raycaster/internal/grid"
	"raycaster/internal/raster"
	"raycaster/internal/raycast"
	"raycaster/internal/texture"
)

// ErrTextureRange is returned when a wall references a texture the atlas lacks.
var ErrTextureRange = errors.New("render: map references a texture missing from the atlas")

// columnsPerJob is the number of screen columns one worker job renders.
const columnsPerJob = 16

// Config holds frame geometry and colors.
type Config struct {
	Width      int
	Height     int
	Background colors.Color
	Cone       colors.Color
	Workers    int // column workers; <= 1 renders sequentially
}

// DefaultConfig returns the reference 1024×512 layout on a white background.
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     512,
		Background: colors.White,
		Cone:       colors.Cone,
		Workers:    1,
	}
}

// Stats summarizes one rendered frame.
type Stats struct {
	Columns int
	Hits    int
}

// Renderer composites the minimap and the 3D view. It holds only read-only
// state, so one Renderer may draw several frames concurrently as long as
// each uses its own FrameBuffer.
type Renderer struct {
	m      *grid.Map
	atlas  *texture.Atlas
	caster *raycast.Caster
	cfg    Config
	rectW  int
	rectH  int
}

// New validates the inputs and builds a renderer for the caster's map.
func New(atlas *texture.Atlas, caster *raycast.Caster, cfg Config) (*Renderer, error) {
	if cfg.Width < 2 || cfg.Height < 1 {
		return nil, fmt.Errorf("render: invalid frame size %dx%d", cfg.Width, cfg.Height)
	}
	m := caster.Map()
	if maxID := m.MaxTextureID(); maxID >= atlas.Count() {
		return nil, fmt.Errorf("%w: texture %d, atlas has %d", ErrTextureRange, maxID, atlas.Count())
	}
	return &Renderer{
		m:      m,
		atlas:  atlas,
		caster: caster,
		cfg:    cfg,
		rectW:  cfg.Width / (m.Width() * 2),
		rectH:  cfg.Height / m.Height(),
	}, nil
}

// NewFrameBuffer allocates a buffer sized for this renderer.
func (r *Renderer) NewFrameBuffer() *raster.FrameBuffer {
	return raster.NewFrameBuffer(r.cfg.Width, r.cfg.Height)
}

// MinimapRect returns the minimap rectangle of grid cell (x, y).
func (r *Renderer) MinimapRect(x, y int) image.Rectangle {
	return image.Rect(x*r.rectW, y*r.rectH, (x+1)*r.rectW, (y+1)*r.rectH)
}

// Render draws one frame of cam into fb.
func (r *Renderer) Render(fb *raster.FrameBuffer, cam raycast.Camera) Stats {
	if fb.Width != r.cfg.Width || fb.Height != r.cfg.Height {
		panic(fmt.Sprintf("render: frame %dx%d, renderer configured for %dx%d",
			fb.Width, fb.Height, r.cfg.Width, r.cfg.Height))
	}

	fb.Clear(r.cfg.Background)
	r.drawMinimap(fb)

	if r.cfg.Workers > 1 {
		return r.renderParallel(fb, cam)
	}

	n := r.cfg.Width / 2
	stats := Stats{Columns: n}
	plot := func(x, y float64) { r.plotCone(fb, x, y) }
	for i := 0; i < n; i++ {
		angle := cam.RayAngle(i, n)
		if hit, ok := r.caster.Cast(cam.X, cam.Y, angle, plot); ok {
			r.drawColumn(fb, cam, i, angle, hit)
			stats.Hits++
		}
	}
	return stats
}

// renderParallel draws the 3D columns on a worker pool, each job owning a
// disjoint range of screen columns, then paints the cone sequentially since
// rays overlap on the minimap.
func (r *Renderer) renderParallel(fb *raster.FrameBuffer, cam raycast.Camera) Stats {
	n := r.cfg.Width / 2
	var hits atomic.Int64

	jobs := make(chan int, r.cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < r.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range jobs {
				end := min(start+columnsPerJob, n)
				for i := start; i < end; i++ {
					angle := cam.RayAngle(i, n)
					if hit, ok := r.caster.Cast(cam.X, cam.Y, angle, nil); ok {
						r.drawColumn(fb, cam, i, angle, hit)
						hits.Add(1)
					}
				}
			}
		}()
	}
	for i := 0; i < n; i += columnsPerJob {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	plot := func(x, y float64) { r.plotCone(fb, x, y) }
	for i := 0; i < n; i++ {
		r.caster.Cast(cam.X, cam.Y, cam.RayAngle(i, n), plot)
	}

	return Stats{Columns: n, Hits: int(hits.Load())}
}

// drawMinimap fills one rectangle per wall cell with the top-left texel of
// its texture.
func (r *Renderer) drawMinimap(fb *raster.FrameBuffer) {
	r.m.Walls(func(x, y int, c grid.Cell) {
		fb.FillRect(x*r.rectW, y*r.rectH, r.rectW, r.rectH, r.atlas.Representative(c.TextureID()))
	})
}

func (r *Renderer) plotCone(fb *raster.FrameBuffer, x, y float64) {
	fb.Set(int(x*float64(r.rectW)), int(y*float64(r.rectH)), r.cfg.Cone)
}

// drawColumn textures screen column W/2+i from a hit, centered vertically.
func (r *Renderer) drawColumn(fb *raster.FrameBuffer, cam raycast.Camera, i int, angle float64, hit raycast.Hit) {
	corrected := raycast.CorrectedDistance(hit.Distance, angle, cam.Angle)
	h := raycast.ColumnHeight(r.cfg.Height, corrected)
	u := hit.TexCoord(r.atlas.Size())
	column := r.atlas.SampleColumn(hit.TextureID, u, h)
	fb.BlitColumn(r.cfg.Width/2+i, r.cfg.Height/2-h/2, column)
}
