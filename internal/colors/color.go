package colors

import "image/color"

// Color is a packed 32-bit color: red in the low byte, then green, blue
// and alpha.
type Color uint32

// Common colors used by the renderer.
var (
	White = Pack(255, 255, 255, 255)
	Black = Pack(0, 0, 0, 255)
	Cone  = Pack(160, 160, 160, 255)
)

// Pack combines four channels into a Color.
func Pack(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Unpack splits c into its four channels.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// RGB returns the color channels without alpha.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// NRGBA converts c to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromNRGBA packs an image/color value.
func FromNRGBA(c color.NRGBA) Color {
	return Pack(c.R, c.G, c.B, c.A)
}
