package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every unit grid cell intersected by a line from (x1, y1) to (x2, y2)
// Coordinates are in grid units; cell (i, j) covers [i, i+1) x [j, j+1)
// Uses Supercover DDA to ensure no skipped cells, guaranteed to terminate by checking target bounds before stepping
// Non-finite endpoints visit nothing
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int) bool) {
	if !IsFinite(x1) || !IsFinite(y1) || !IsFinite(x2) || !IsFinite(y2) {
		return
	}

	fx1, fy1 := math.Floor(x1), math.Floor(y1)
	ix, iy := int(fx1), int(fy1)
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// tMax: line parameter at the first boundary crossing, tDelta: parameter per cell
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx != 0 {
		tDeltaX = 1 / dx
		if stepX > 0 {
			tMaxX = (1 - (x1 - fx1)) * tDeltaX
		} else {
			tMaxX = (x1 - fx1) * tDeltaX
		}
	}
	if dy != 0 {
		tDeltaY = 1 / dy
		if stepY > 0 {
			tMaxY = (1 - (y1 - fy1)) * tDeltaY
		} else {
			tMaxY = (y1 - fy1) * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}
