package physics

import (
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
)

// Step runs one simulation tick: relax constraints against last tick's positions, then integrate
func Step(c *core.Chain, ptr core.PointerState, cfg parameter.Config) {
	Relax(c, cfg.RelaxPasses)
	Integrate(c, ptr, cfg)
}
