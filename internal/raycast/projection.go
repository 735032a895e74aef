package raycast

import "math"

// MaxColumnScale caps a wall column at this many screen heights, so a ray
// that starts inside a wall (distance ≈ 0) still yields a finite column.
const MaxColumnScale = 64

// CorrectedDistance removes the fisheye effect by projecting the raw ray
// distance onto the camera's facing direction.
func CorrectedDistance(t, angle, facing float64) float64 {
	return t * math.Cos(angle-facing)
}

// ProjectedHeight is the unclamped on-screen height of a wall slice.
func ProjectedHeight(screenH int, corrected float64) float64 {
	return float64(screenH) / corrected
}

// ColumnHeight returns the wall slice height in whole pixels.
func ColumnHeight(screenH int, corrected float64) int {
	limit := MaxColumnScale * screenH
	if corrected <= 0 {
		return limit
	}
	h := ProjectedHeight(screenH, corrected)
	if h >= float64(limit) {
		return limit
	}
	return int(h)
}
