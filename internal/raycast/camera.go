package raycast

import "raycaster/internal/mathutil"

// Camera is the viewpoint: a continuous position in map-grid units, a
// facing angle and a horizontal field of view, both in radians.
type Camera struct {
	X, Y  float64
	Angle float64
	FOV   float64
}

// Rotate turns the camera by delta radians.
func (c *Camera) Rotate(delta float64) {
	c.Angle += delta
}

// Direction returns the unit facing vector.
func (c Camera) Direction() mathutil.Vec2 {
	return mathutil.FromAngle(c.Angle)
}

// RayAngle returns the angle of ray i out of n spread across the field of
// view, starting at its left edge.
func (c Camera) RayAngle(i, n int) float64 {
	return c.Angle - c.FOV/2 + c.FOV*float64(i)/float64(n)
}
