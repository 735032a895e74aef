package raycast

import (
	"fmt"
	"math"
)

// Face tells which kind of grid line a ray crossed to reach a wall.
type Face int

const (
	// FaceHorizontal is a wall along a y = const grid line; u runs along x.
	FaceHorizontal Face = iota
	// FaceVertical is a wall along an x = const grid line; u runs along y.
	FaceVertical
)

func (f Face) String() string {
	if f == FaceVertical {
		return "vertical"
	}
	return "horizontal"
}

// Hit is the first wall a ray reached.
type Hit struct {
	Distance  float64 // raw distance marched from the origin
	X, Y      float64 // hit point in map-grid units
	TextureID int

	// Signed distance of the hit point from the nearest grid line on each
	// axis, in [-0.5, 0.5).
	OffsetX, OffsetY float64
}

func newHit(t, x, y float64, texID int) Hit {
	return Hit{
		Distance:  t,
		X:         x,
		Y:         y,
		TextureID: texID,
		OffsetX:   x - math.Floor(x+0.5),
		OffsetY:   y - math.Floor(y+0.5),
	}
}

// Face picks the crossed grid line from the larger offset. Near corners both
// offsets are small and the comparison decides arbitrarily.
func (h Hit) Face() Face {
	if math.Abs(h.OffsetY) > math.Abs(h.OffsetX) {
		return FaceVertical
	}
	return FaceHorizontal
}

// Offset returns the signed offset along the wall face.
func (h Hit) Offset() float64 {
	if h.Face() == FaceVertical {
		return h.OffsetY
	}
	return h.OffsetX
}

// TexCoord converts the face offset to a texture column in [0, size).
func (h Hit) TexCoord(size int) int {
	u := int(h.Offset() * float64(size))
	if u < 0 {
		u += size
	}
	if u < 0 || u >= size {
		panic(fmt.Sprintf("raycast: texture coordinate %d outside [0, %d) for hit (%g, %g)", u, size, h.X, h.Y))
	}
	return u
}
