package physics

import (
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/vmath"
)

// Relax pulls every adjacent pair toward the chain's rest spacing, repeated for the given number of passes
// Each pass walks from the tail to the pin; the pin is snapped back to its anchor instead of being corrected
// Coincident pairs are skipped for the pass, so no non-finite value enters the chain
func Relax(c *core.Chain, passes int) {
	pts := c.Points
	for pass := 0; pass < passes; pass++ {
		for i := len(pts) - 1; i >= 0; i-- {
			if i == 0 || pts[i].IsPin {
				pts[i].X = c.PinX
				pts[i].Y = c.PinY
				continue
			}
			relaxPair(&pts[i], &pts[i-1], c.Spacing)
		}
	}
}

// relaxPair moves both endpoints symmetrically along their separation so the pair approaches spacing
func relaxPair(p, prev *core.Point, spacing float64) {
	dx := p.X - prev.X
	dy := p.Y - prev.Y
	dist := vmath.Magnitude(dx, dy)
	if dist == 0 {
		return
	}

	diff := spacing/dist - 1
	ox := dx * diff * 0.5
	oy := dy * diff * 0.5

	p.X += ox
	prev.X -= ox
	p.Y += oy
	prev.Y -= oy
}
