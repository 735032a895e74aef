// Package preview shows the rotating view in a window instead of writing
// frames to disk.
package preview

import (
	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/internal/raster"
	"raycaster/internal/render"
	"raycaster/internal/scene"
)

// Player steps through the scene's rotation schedule, one frame per tick.
// It implements ebiten.Game.
type Player struct {
	scene    *scene.Scene
	renderer *render.Renderer
	fb       *raster.FrameBuffer
	pixels   []byte
	frame    int
	loop     bool
	dirty    bool
}

// NewPlayer returns a player for the scene. With loop set the schedule
// restarts after its last frame; otherwise the last frame stays on screen.
func NewPlayer(sc *scene.Scene, r *render.Renderer, loop bool) *Player {
	fb := r.NewFrameBuffer()
	return &Player{
		scene:    sc,
		renderer: r,
		fb:       fb,
		pixels:   make([]byte, fb.Width*fb.Height*4),
		loop:     loop,
		dirty:    true,
	}
}

// Frame returns the index of the frame currently shown.
func (p *Player) Frame() int { return p.frame }

// Update advances the schedule and renders the next frame.
func (p *Player) Update() error {
	if !p.dirty {
		next := p.frame + 1
		if next >= p.scene.Rotation.Frames {
			if !p.loop {
				return nil
			}
			next = 0
		}
		p.frame = next
	}
	p.renderer.Render(p.fb, p.scene.CameraAt(p.frame))
	p.fb.CopyRGBA(p.pixels)
	p.dirty = false
	return nil
}

// Draw uploads the last rendered frame.
func (p *Player) Draw(screen *ebiten.Image) {
	screen.WritePixels(p.pixels)
}

// Layout keeps the logical screen at the frame size.
func (p *Player) Layout(_, _ int) (int, int) {
	return p.fb.Width, p.fb.Height
}
