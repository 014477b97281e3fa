package audio

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/pendulum/parameter"
	"github.com/lixenwraith/pendulum/vmath"
)

// SwingTracker turns raw per-tick ball speed into a smoothed level in [0, 1]
// A critically damped spring removes the jitter the relaxation solver leaves in point velocity
type SwingTracker struct {
	spring    harmonica.Spring
	fullSpeed float64
	pos, vel  float64
}

// NewSwingTracker creates a tracker updated once per tick; fullSpeed maps to level 1
func NewSwingTracker(tick time.Duration, fullSpeed float64) *SwingTracker {
	fps := 100
	if tick > 0 {
		fps = max(1, int(time.Second/tick))
	}
	return &SwingTracker{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), parameter.SwingSpringFrequency, parameter.SwingSpringDamping),
		fullSpeed: fullSpeed,
	}
}

// Update advances the spring toward the normalized speed and returns the smoothed level
func (t *SwingTracker) Update(speed float64) float64 {
	target := 0.0
	if t.fullSpeed > 0 && vmath.IsFinite(speed) {
		target = vmath.Clamp(speed/t.fullSpeed, 0, 1)
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, target)
	return t.Level()
}

// Level returns the current smoothed level
func (t *SwingTracker) Level() float64 {
	return vmath.Clamp(t.pos, 0, 1)
}

// Reset returns the tracker to silence
func (t *SwingTracker) Reset() {
	t.pos, t.vel = 0, 0
}
