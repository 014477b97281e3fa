package vmath

import "math"

// CircleContains returns true if (x, y) lies inside or on the circle at (cx, cy)
func CircleContains(x, y, cx, cy, radius float64) bool {
	return DistanceSq(x, y, cx, cy) <= radius*radius
}

// CircleCells returns the inclusive grid cell range covering a circle
// sx and sy scale canvas units into grid units per axis (terminal sub-cells are not square in pixels)
func CircleCells(cx, cy, radius, sx, sy float64) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor((cx - radius) * sx))
	minY = int(math.Floor((cy - radius) * sy))
	maxX = int(math.Floor((cx + radius) * sx))
	maxY = int(math.Floor((cy + radius) * sy))
	return
}
