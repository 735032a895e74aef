package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces an opaque frame to w×h with CatmullRom filtering.
// Frames already at or below the target size are returned unchanged.
func Downsample(img *image.RGBA, w, h int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
