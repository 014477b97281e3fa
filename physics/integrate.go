package physics

import (
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/vmath"
)

// Integrate advances every free point by one verlet step, tail first
// Pointer impulses are injected before a point's own update; the pin is left to the solver
func Integrate(c *core.Chain, ptr core.PointerState, cfg parameter.Config) {
	for i := len(c.Points) - 1; i >= 0; i-- {
		p := &c.Points[i]
		if p.IsPin {
			continue
		}
		ApplyPointer(p, ptr, cfg)
		Verlet(p, cfg)
	}
}

// ApplyPointer overwrites the point's previous position so the next verlet step carries the drag velocity
// Only the drag button held within the influence radius has an effect; returns true if the point was touched
func ApplyPointer(p *core.Point, ptr core.PointerState, cfg parameter.Config) bool {
	if !ptr.IsDown || ptr.Button != cfg.DragButton {
		return false
	}
	if vmath.Distance(p.X, p.Y, ptr.X, ptr.Y) >= cfg.InfluencePx {
		return false
	}

	dx, dy := ptr.Delta()
	p.PrevX = p.X - dx*cfg.DragAmplify
	p.PrevY = p.Y - dy*cfg.DragAmplify
	return true
}

// Verlet performs x' = 2x - x_prev + a with gravity on Y, heavier for ball points
func Verlet(p *core.Point, cfg parameter.Config) {
	ay := cfg.Gravity
	if p.IsWithinBall {
		ay += cfg.BallGravity
	}

	curX, curY := p.X, p.Y
	p.X = 2*curX - p.PrevX
	p.Y = 2*curY - p.PrevY + ay
	p.PrevX, p.PrevY = curX, curY
}
