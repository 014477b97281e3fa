package physics

import (
	"math"

	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/vmath"
)

// SpacingError returns the summed and largest deviation of adjacent pair distances from the rest spacing
func SpacingError(c *core.Chain) (sum, max float64) {
	for i := 1; i < len(c.Points); i++ {
		a, b := &c.Points[i-1], &c.Points[i]
		e := math.Abs(vmath.Distance(a.X, a.Y, b.X, b.Y) - c.Spacing)
		sum += e
		if e > max {
			max = e
		}
	}
	return sum, max
}

// BallSpeed returns the per-tick displacement of the ball anchor
func BallSpeed(c *core.Chain) float64 {
	vx, vy := c.BallAnchor().Velocity()
	return vmath.Magnitude(vx, vy)
}

// IsFinite reports whether every coordinate in the chain is finite
func IsFinite(c *core.Chain) bool {
	for i := range c.Points {
		p := &c.Points[i]
		if !vmath.IsFinite(p.X) || !vmath.IsFinite(p.Y) || !vmath.IsFinite(p.PrevX) || !vmath.IsFinite(p.PrevY) {
			return false
		}
	}
	return true
}
