package raster

import (
	"fmt"
	"image"

	"raycaster/internal/colors"
)

// FrameBuffer holds one frame as flat RGB bytes for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a zeroed (black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("raster: invalid frame size %dx%d", w, h))
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c colors.Color) {
	r, g, b := c.RGB()
	for i := 0; i < len(fb.Pix); i += 3 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
	}
}

func (fb *FrameBuffer) offset(x, y int) int {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d frame", x, y, fb.Width, fb.Height))
	}
	return (x + y*fb.Width) * 3
}

// Set writes one pixel. Out-of-range coordinates panic.
func (fb *FrameBuffer) Set(x, y int, c colors.Color) {
	i := fb.offset(x, y)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c.RGB()
}

// At reads one pixel as an opaque color. Out-of-range coordinates panic.
func (fb *FrameBuffer) At(x, y int) colors.Color {
	i := fb.offset(x, y)
	return colors.Pack(fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], 255)
}

// FillRect fills the w×h rectangle at (x, y), skipping pixels that fall
// outside the buffer.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c colors.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r, g, b := c.RGB()
	for cy := y0; cy < y1; cy++ {
		row := cy * fb.Width * 3
		for cx := x0; cx < x1; cx++ {
			i := row + cx*3
			fb.Pix[i] = r
			fb.Pix[i+1] = g
			fb.Pix[i+2] = b
		}
	}
}

// BlitColumn copies column into screen column x starting at row top. Rows
// above or below the buffer are clipped; x must lie inside it.
func (fb *FrameBuffer) BlitColumn(x, top int, column []colors.Color) {
	if x < 0 || x >= fb.Width {
		panic(fmt.Sprintf("raster: column %d outside %d-wide frame", x, fb.Width))
	}
	start := max(0, -top)
	end := min(len(column), fb.Height-top)
	for j := start; j < end; j++ {
		i := (x + (top+j)*fb.Width) * 3
		fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = column[j].RGB()
	}
}

// CopyRGBA writes the frame into dst as opaque RGBA bytes. dst must hold
// W*H*4 bytes.
func (fb *FrameBuffer) CopyRGBA(dst []byte) {
	if len(dst) != fb.Width*fb.Height*4 {
		panic(fmt.Sprintf("raster: RGBA destination has %d bytes, want %d", len(dst), fb.Width*fb.Height*4))
	}
	for i, j := 0, 0; i < len(fb.Pix); i, j = i+3, j+4 {
		dst[j] = fb.Pix[i]
		dst[j+1] = fb.Pix[i+1]
		dst[j+2] = fb.Pix[i+2]
		dst[j+3] = 255
	}
}

// Image converts the frame to an opaque RGBA image for encoding.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyRGBA(img.Pix)
	return img
}
