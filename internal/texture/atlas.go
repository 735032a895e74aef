package texture

import (
	"fmt"
	"image"

	"raycaster/internal/colors"
)

// Atlas holds N square textures of side S packed horizontally into one
// (N*S)×S image.
type Atlas struct {
	size  int
	count int
	pix   []colors.Color // len = size*count*size, row-major over the whole strip
}

// Size returns the side length S of each texture.
func (a *Atlas) Size() int { return a.size }

// Count returns the number of textures N.
func (a *Atlas) Count() int { return a.count }

// Width returns the width of the packed strip.
func (a *Atlas) Width() int { return a.size * a.count }

func (a *Atlas) check(texID, x, y int) {
	if texID < 0 || texID >= a.count {
		panic(fmt.Sprintf("texture: id %d outside atlas of %d", texID, a.count))
	}
	if x < 0 || x >= a.size || y < 0 || y >= a.size {
		panic(fmt.Sprintf("texture: texel (%d, %d) outside %dx%d texture", x, y, a.size, a.size))
	}
}

// PixelAt returns texel (x, y) of texture texID.
func (a *Atlas) PixelAt(texID, x, y int) colors.Color {
	a.check(texID, x, y)
	return a.pix[texID*a.size+x+y*a.Width()]
}

// Representative returns the color used for the texture on the minimap:
// its top-left texel.
func (a *Atlas) Representative(texID int) colors.Color {
	return a.PixelAt(texID, 0, 0)
}

// SampleColumn stretches column u of texture texID to height rows using
// nearest-neighbor sampling: row r reads source row r*S/height.
func (a *Atlas) SampleColumn(texID, u, height int) []colors.Color {
	if height <= 0 {
		return nil
	}
	a.check(texID, u, 0)

	column := make([]colors.Color, height)
	x := texID*a.size + u
	w := a.Width()
	for r := range column {
		y := r * a.size / height
		column[r] = a.pix[x+y*w]
	}
	return column
}

// Texture returns a copy of one texture as an image.
func (a *Atlas) Texture(texID int) *image.NRGBA {
	a.check(texID, 0, 0)

	img := image.NewNRGBA(image.Rect(0, 0, a.size, a.size))
	for y := 0; y < a.size; y++ {
		for x := 0; x < a.size; x++ {
			r, g, b, al := a.PixelAt(texID, x, y).Unpack()
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = al
		}
	}
	return img
}
